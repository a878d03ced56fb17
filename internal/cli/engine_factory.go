package cli

import (
	"context"
	"fmt"
	"log/slog"

	backend "github.com/redis/go-redis/v9"

	"github.com/rinasm/journeymap"
	"github.com/rinasm/journeymap/pkg/adapters/file"
	redisadapter "github.com/rinasm/journeymap/pkg/adapters/redis"
	"github.com/rinasm/journeymap/pkg/domain"
	"github.com/rinasm/journeymap/pkg/ports"
)

// Options carries the flag values shared by the journeymap commands.
type Options struct {
	File     string // journey document path
	RedisURL string // when set, journeys come from a Redis store instead of File
	Set      string // journey set name inside the store
	Debug    bool
}

// CreateEngine initializes a journeymap engine with standard CLI conventions.
func CreateEngine(opts Options, logger *slog.Logger, extra ...journeymap.Option) (*journeymap.Engine, error) {
	engineOpts := []journeymap.Option{
		journeymap.WithLogger(logger),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, journeymap.WithHooks(createDebugHooks(logger)))
	}

	if opts.RedisURL != "" {
		store, err := CreateStore(opts, "")
		if err != nil {
			return nil, err
		}
		engineOpts = append(engineOpts, journeymap.WithSource(&storeSource{store: store, name: opts.Set}))
	} else {
		// Read the document once up front so a bad path fails here rather
		// than on the first snapshot, and so its label/page can seed the
		// root node.
		doc, err := file.LoadDocument(opts.File)
		if err != nil {
			return nil, fmt.Errorf("error reading journeys: %w", err)
		}
		if doc.Label != "" {
			engineOpts = append(engineOpts, journeymap.WithRootLabel(doc.Label))
		}
		if doc.Page != "" {
			engineOpts = append(engineOpts, journeymap.WithRootURL(doc.Page))
		}
		engineOpts = append(engineOpts, journeymap.WithSource(file.NewSource(opts.File)))
	}

	engineOpts = append(engineOpts, extra...)

	engine, err := journeymap.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}

	return engine, nil
}

// CreateStore builds the journey store selected by the flags: Redis when a
// URL is set, the local file store under dir otherwise.
func CreateStore(opts Options, dir string) (ports.JourneyStore, error) {
	if opts.RedisURL != "" {
		ropts, err := backend.ParseURL(opts.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		return redisadapter.NewFromClient(backend.NewClient(ropts)), nil
	}
	return file.NewStore(dir), nil
}

// CreateLocker builds a distributed locker for the flags. Only the Redis
// backend supports one; the file store returns nil and callers fall back
// to process-local locking.
func CreateLocker(opts Options) (ports.DistributedLocker, error) {
	if opts.RedisURL == "" {
		return nil, nil
	}
	ropts, err := backend.ParseURL(opts.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return redisadapter.NewLocker(backend.NewClient(ropts), "journeymap:"), nil
}

// LoadJourneys resolves the working journey set for the flags, either from
// the document file or from the named set in the Redis store.
func LoadJourneys(ctx context.Context, opts Options) ([]domain.Journey, error) {
	if opts.RedisURL != "" {
		store, err := CreateStore(opts, "")
		if err != nil {
			return nil, err
		}
		return store.Load(ctx, opts.Set)
	}

	doc, err := file.LoadDocument(opts.File)
	if err != nil {
		return nil, err
	}
	return doc.Journeys, nil
}

// storeSource adapts a JourneyStore to the JourneySource port so the
// engine can pull a named set on every snapshot.
type storeSource struct {
	store ports.JourneyStore
	name  string
}

func (s *storeSource) Journeys(ctx context.Context) ([]domain.Journey, error) {
	return s.store.Load(ctx, s.name)
}
