package util

import (
	"image/color"
	"sync"
	"testing"
)

func TestThreadSafeQueueFIFO(t *testing.T) {
	q := NewThreadSafeQueue[int]()
	for i := 1; i <= 3; i++ {
		q.Push(i)
	}

	if got := q.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}
	got := q.Drain()
	for i, want := range []int{1, 2, 3} {
		if got[i] != want {
			t.Fatalf("Drain()[%d] = %d, want %d", i, got[i], want)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len após Drain = %d, want 0", q.Len())
	}
}

func TestRGBAFromConfigArray(t *testing.T) {
	if got := RGBA([4]uint8{30, 30, 40, 200}); got != (color.RGBA{R: 30, G: 30, B: 40, A: 200}) {
		t.Errorf("RGBA = %v, want {30 30 40 200}", got)
	}
}

func TestThreadSafeQueueDrain(t *testing.T) {
	q := NewThreadSafeQueue[string]()
	if got := q.Drain(); got != nil {
		t.Errorf("Drain em fila vazia = %v, want nil", got)
	}

	q.Push("a")
	q.Push("b")
	got := q.Drain()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Drain = %v, want [a b]", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len após Drain = %d, want 0", q.Len())
	}

	q.Push("c")
	if got := q.Drain(); len(got) != 1 || got[0] != "c" {
		t.Errorf("segundo Drain = %v, want [c]", got)
	}
}

func TestThreadSafeQueueConcurrentPush(t *testing.T) {
	q := NewThreadSafeQueue[int]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Push(n)
			}
		}(i)
	}
	wg.Wait()

	if got := len(q.Drain()); got != 1600 {
		t.Errorf("Drain retornou %d itens, want 1600", got)
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		hex  uint32
		want color.RGBA
	}{
		{0x00ff00, color.RGBA{0, 255, 0, 255}},
		{0x0000ff, color.RGBA{0, 0, 255, 255}},
		{0x1e1e28, color.RGBA{30, 30, 40, 255}},
	}
	for _, tt := range tests {
		if got := HexColor(tt.hex); got != tt.want {
			t.Errorf("HexColor(%#06x) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}
