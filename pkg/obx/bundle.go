package obx

import (
	"fmt"

	"github.com/mholt/archiver/v3"
)

// Bundle packs the given OBX files into a single archive for transfer to the
// observatory. The archive format is derived from the destination suffix,
// e.g. .zip or .tar.gz.
func Bundle(archivePath string, files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("bundle %s: no files given", archivePath)
	}
	if err := archiver.Archive(files, archivePath); err != nil {
		return fmt.Errorf("bundle %s: %v", archivePath, err)
	}
	return nil
}
