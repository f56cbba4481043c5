package submit

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Hard cap on in-flight writes. Manifests come in small batches; two
// concurrent writes bound open file handles without serializing.
const writeConcurrency = 2

var writeFile = os.WriteFile

// WriteChanges persists every change into outputDir, flattening any
// directory components of the change paths. Entries without an
// extractable file name are skipped. The batch fails if any single
// write fails; files already written are left in place.
func WriteChanges(changes ChangeSet, outputDir string) error {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory: %s", err)
	}

	var g errgroup.Group
	g.SetLimit(writeConcurrency)

	for _, change := range changes {
		name := filepath.Base(change.Path)
		switch name {
		case "", ".", "..", "/":
			continue
		}
		content := []byte(change.Content)
		g.Go(func() error {
			if err := writeFile(filepath.Join(outputDir, name), content, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %s", name, err)
			}
			return nil
		})
	}

	return g.Wait()
}
