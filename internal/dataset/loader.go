package dataset

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	domain "hrdash/domain/dataset"
	"hrdash/internal"
	"hrdash/internal/errors"
	"hrdash/internal/metrics"

	"golang.org/x/sync/singleflight"
)

// LoaderConfig configures where datasets come from
type LoaderConfig struct {
	FilePath string
	Sample   SampleConfig
}

// Loader loads the employee dataset once per source version and memoizes it.
// The memo key is the file path plus modification time and size, or the sample
// seed and size when the file is absent.
type Loader struct {
	config LoaderConfig
	log    *internal.Logger
	group  singleflight.Group

	mu      sync.RWMutex
	key     string
	current *domain.Dataset
}

// NewLoader creates a loader
func NewLoader(config LoaderConfig) *Loader {
	return &Loader{
		config: config,
		log:    internal.DefaultLogger.With("Loader"),
	}
}

// Load returns the memoized dataset, reading or synthesizing it when the source changed.
// A missing file falls back to sample data; every other read failure is returned.
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	key, info, err := l.sourceKey()
	if err != nil {
		return nil, err
	}

	l.mu.RLock()
	if l.current != nil && l.key == key {
		ds := l.current
		l.mu.RUnlock()
		metrics.DatasetCacheHits.Inc()
		return ds, nil
	}
	l.mu.RUnlock()

	v, err, _ := l.group.Do(key, func() (interface{}, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var ds *domain.Dataset
		var err error
		if info != nil {
			ds, err = l.loadFile(key)
		} else {
			ds, err = l.loadSample(key)
		}
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.key = key
		l.current = ds
		l.mu.Unlock()
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Dataset), nil
}

// sourceKey stats the data file. info is nil when the sample will be used.
func (l *Loader) sourceKey() (string, fs.FileInfo, error) {
	info, err := os.Stat(l.config.FilePath)
	switch {
	case err == nil:
		return fmt.Sprintf("file:%s@%d:%d", l.config.FilePath, info.ModTime().UnixNano(), info.Size()), info, nil
	case stderrors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("sample:seed=%d:n=%d", l.config.Sample.Seed, l.config.Sample.Size), nil, nil
	default:
		return "", nil, errors.DataSourceError("cannot access "+l.config.FilePath, err)
	}
}

func (l *Loader) loadFile(key string) (*domain.Dataset, error) {
	records, err := NewDataReader(l.config.FilePath).Read()
	if stderrors.Is(err, fs.ErrNotExist) {
		// removed between stat and read
		return l.loadSample(key)
	}
	if err != nil {
		return nil, errors.DataSourceError("failed to read "+l.config.FilePath, err)
	}

	df, err := FrameFromRecords(records)
	if err != nil {
		return nil, err
	}
	df, report, err := Normalize(df)
	if err != nil {
		return nil, errors.DataSourceError("failed to normalize "+l.config.FilePath, err)
	}

	notices := []domain.Notice{{
		Level:   domain.NoticeSuccess,
		Message: fmt.Sprintf("Data loaded from `%s` (%d rows).", l.config.FilePath, df.Nrow()),
	}}
	notices = append(notices, normalizationNotices(report)...)

	l.log.Info("loaded %d rows from %s (converted=%d invalid=%d)", df.Nrow(), l.config.FilePath, report.Converted, report.Invalid)
	metrics.DatasetLoads.WithLabelValues(string(domain.SourceFile)).Inc()
	metrics.AttritionCoerced.Set(float64(report.Invalid))

	return &domain.Dataset{
		Frame:         df,
		Normalization: report,
		Notices:       notices,
		Source: domain.Source{
			Kind:     domain.SourceFile,
			Path:     l.config.FilePath,
			Key:      key,
			LoadedAt: time.Now(),
		},
	}, nil
}

func (l *Loader) loadSample(key string) (*domain.Dataset, error) {
	l.log.Warn("data file %s not found, generating sample data (seed=%d, n=%d)", l.config.FilePath, l.config.Sample.Seed, l.config.Sample.Size)

	df, report, err := Normalize(NewSampleGenerator(l.config.Sample).Generate())
	if err != nil {
		return nil, errors.Wrap(err, "failed to normalize sample data")
	}

	metrics.DatasetLoads.WithLabelValues(string(domain.SourceSample)).Inc()
	metrics.AttritionCoerced.Set(float64(report.Invalid))

	return &domain.Dataset{
		Frame:         df,
		Normalization: report,
		Notices: []domain.Notice{{
			Level:   domain.NoticeWarning,
			Message: fmt.Sprintf("File `%s` not found. Using sample data for demonstration.", l.config.FilePath),
		}},
		Source: domain.Source{
			Kind:     domain.SourceSample,
			Seed:     l.config.Sample.Seed,
			Key:      key,
			LoadedAt: time.Now(),
		},
	}, nil
}

func normalizationNotices(report domain.NormalizationReport) []domain.Notice {
	var notices []domain.Notice
	if report.Converted > 0 {
		notices = append(notices, domain.Notice{
			Level:   domain.NoticeInfo,
			Message: fmt.Sprintf("Converted %d numeric Attrition values to 'Yes'/'No'.", report.Converted),
		})
	}
	if report.Invalid > 0 {
		notices = append(notices, domain.Notice{
			Level:   domain.NoticeWarning,
			Message: fmt.Sprintf("Found %d invalid values in the Attrition column. Converted them to 'No'.", report.Invalid),
		})
	}
	return notices
}
