package platform

import (
	"context"
	"fmt"

	"github.com/Roger5791/notekeeper/pkg/adapters/fs"
	"github.com/Roger5791/notekeeper/pkg/core"
)

// New builds a ready-to-use service on top of the store slot at path.
//
//	svc, err := notekeeper.New("./notekeeper.json")
func New(path string, opts ...Option) (*core.Service, error) {
	repo, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}
	return core.NewService(repo), nil
}

// Init initializes a repository for the store slot at path and returns it.
// An injected repository (WithRepository) is returned as-is; its owner is
// responsible for initialization.
func Init(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	var repo core.Repository
	switch o.adapter {
	case "fs":
		repo = initFS(path, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

// initFS handles the configuration of the file adapter.
func initFS(path string, o *options) core.Repository {
	autoInit := true
	if val, ok := o.config["auto_init"].(bool); ok {
		autoInit = val
	}
	mustExist, _ := o.config["must_exist"].(bool)
	readOnly, _ := o.config["read_only"].(bool)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	return fs.NewRepository(fs.Config{
		Path:         path,
		AutoInit:     autoInit,
		MustExist:    mustExist,
		ReadOnly:     readOnly,
		Logger:       o.logger,
		ErrorHandler: errorHandler,
	})
}
