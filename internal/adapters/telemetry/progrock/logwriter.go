package progrock

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/depcollect/internal/core/domain"
	"go.trai.ch/depcollect/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ progrock.Writer = (*LogWriter)(nil)

// LogWriter is a progrock.Writer that replays vertex output into a ports.Logger.
//
// Lines written by Vertex.Log keep their level. Other lines are logged at info level
// for stdout and warn level for stderr. Partial lines are held until their newline
// arrives or the writer is closed.
type LogWriter struct {
	logger ports.Logger

	mu      sync.Mutex
	pending map[streamKey]*bytes.Buffer
	order   []streamKey
	done    map[string]bool
}

type streamKey struct {
	vertex string
	stream progrock.LogStream
}

// NewLogWriter creates a LogWriter forwarding to logger.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{
		logger:  logger,
		pending: make(map[streamKey]*bytes.Buffer),
		done:    make(map[string]bool),
	}
}

// WriteStatus logs the complete lines carried by update and reports finished vertices at debug level.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, l := range update.Logs {
		key := streamKey{vertex: l.Vertex, stream: l.Stream}
		buf, ok := w.pending[key]
		if !ok {
			buf = &bytes.Buffer{}
			w.pending[key] = buf
			w.order = append(w.order, key)
		}
		buf.Write(l.Data)

		for {
			line, err := buf.ReadString('\n')
			if err != nil {
				// no newline yet, keep the fragment
				buf.Reset()
				buf.WriteString(line)
				break
			}
			w.emit(key.stream, strings.TrimSuffix(line, "\n"))
		}
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil || w.done[v.Id] {
			continue
		}
		w.done[v.Id] = true
		switch {
		case v.Error != nil:
			w.logger.Debug(fmt.Sprintf("'%s' failed: %s", v.Name, v.GetError()))
		case v.Cached:
			w.logger.Debug(fmt.Sprintf("'%s' added no new dependencies", v.Name))
		default:
			w.logger.Debug(fmt.Sprintf("'%s' done", v.Name))
		}
	}
	return nil
}

// Close flushes any unterminated lines.
func (w *LogWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, key := range w.order {
		if buf := w.pending[key]; buf.Len() > 0 {
			w.emit(key.stream, buf.String())
			buf.Reset()
		}
	}
	return nil
}

func (w *LogWriter) emit(stream progrock.LogStream, line string) {
	if line == "" {
		return
	}

	level := domain.LogLevelInfo
	if stream == progrock.LogStream_STDERR {
		level = domain.LogLevelWarn
	}
	if rest, ok := strings.CutPrefix(line, "["); ok {
		if name, msg, found := strings.Cut(rest, "] "); found {
			if parsed, known := domain.ParseLogLevel(name); known && name != "" {
				level, line = parsed, msg
			}
		}
	}

	switch level {
	case domain.LogLevelDebug:
		w.logger.Debug(line)
	case domain.LogLevelInfo:
		w.logger.Info(line)
	case domain.LogLevelWarn:
		w.logger.Warn(line)
	default:
		w.logger.Error(zerr.New(line))
	}
}
