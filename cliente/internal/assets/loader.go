package assets

import (
	"context"
	"fmt"
	"os"
	"sync"

	"RockViewer/shared/util"

	log "github.com/sirupsen/logrus"
)

// ModelReady é o evento postado quando um asset termina de carregar.
type ModelReady struct {
	Path  string
	Model *ModelData
}

// DecodeFunc transforma um caminho em geometria CPU.
type DecodeFunc func(path string) (*ModelData, error)

// ProgressFunc recebe o andamento da leitura de um asset.
type ProgressFunc func(path string, read, total int64)

// Loader carrega assets fora da thread de render. O resultado nunca toca a
// cena diretamente: sucessos viram eventos na fila, falhas vão para o log.
type Loader struct {
	// Progress é chamado uma vez após a leitura do arquivo. Padrão: no-op.
	Progress ProgressFunc

	events *util.ThreadSafeQueue[ModelReady]
	decode DecodeFunc
	logger log.FieldLogger
	wg     sync.WaitGroup
}

// NewLoader cria um Loader que publica em events e reporta falhas em logger.
func NewLoader(events *util.ThreadSafeQueue[ModelReady], logger log.FieldLogger) *Loader {
	return NewLoaderWithDecoder(events, logger, DecodeFile)
}

// NewLoaderWithDecoder permite trocar o decodificador (usado nos testes).
func NewLoaderWithDecoder(events *util.ThreadSafeQueue[ModelReady], logger log.FieldLogger, decode DecodeFunc) *Loader {
	return &Loader{
		Progress: func(string, int64, int64) {},
		events:   events,
		decode:   decode,
		logger:   logger,
	}
}

// Load dispara o carregamento de path e retorna imediatamente.
// Não há retry nem timeout; se ctx for cancelado antes da conclusão,
// o resultado é descartado.
func (l *Loader) Load(ctx context.Context, path string) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				l.fail(path, fmt.Errorf("pânico ao decodificar: %v", r))
			}
		}()

		model, err := l.run(path)
		if err != nil {
			l.fail(path, err)
			return
		}
		if ctx.Err() != nil {
			l.logger.WithField("path", path).Debug("[Assets] Carregamento descartado (encerrando)")
			return
		}

		l.logger.WithFields(log.Fields{
			"path":      path,
			"meshes":    len(model.Meshes),
			"triangles": model.TriangleCount(),
		}).Info("[Assets] Modelo carregado")
		l.events.Push(ModelReady{Path: path, Model: model})
	}()
}

func (l *Loader) run(path string) (*ModelData, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("asset indisponível: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("asset %s é um diretório", path)
	}

	model, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	if l.Progress != nil {
		l.Progress(path, info.Size(), info.Size())
	}
	return model, nil
}

func (l *Loader) fail(path string, err error) {
	l.logger.WithField("path", path).WithError(err).Error("[Assets] FALHA ao carregar modelo")
}

// Wait bloqueia até todos os carregamentos em andamento terminarem.
func (l *Loader) Wait() {
	l.wg.Wait()
}
