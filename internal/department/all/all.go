// Package all links every department implementation into the registry.
package all

import (
	_ "github.com/sharadgeorge/oncall-converter/internal/department/cardiology"
	_ "github.com/sharadgeorge/oncall-converter/internal/department/radiology"
)
