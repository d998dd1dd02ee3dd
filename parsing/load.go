package parsing

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/NickyBoy89/jgenerics/typegraph"
)

// LoadFiles reads and parses every file concurrently, then adds their
// declarations to the graph in the order the files were given
func LoadFiles(ctx context.Context, graph *typegraph.Graph, paths ...string) ([]*SourceFile, error) {
	files := make([]*SourceFile, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			source, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			file := &SourceFile{Name: path, Source: source}
			if err := file.ParseASTContext(ctx); err != nil {
				return err
			}
			file.ParseSymbols()
			files[i] = file
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, file := range files {
		if err := graph.Add(file.Symbols.Declarations()...); err != nil {
			return nil, fmt.Errorf("loading %s: %w", file.Name, err)
		}
		log.WithFields(log.Fields{
			"file":         file.Name,
			"package":      file.Symbols.Package,
			"declarations": len(file.Symbols.Declarations()),
		}).Debug("Loaded file")
	}
	return files, nil
}
