package testing

import (
	"os"
	"path/filepath"
	"runtime"
)

// Blank-import this package from a _test.go file to run tests from the
// project root, so relative paths (logs dir, upload dir, .env) resolve the
// same way they do for cmd/server:
//
//	import (
//	  _ "github.com/ChandravardhanKothi/agro-advisory-service/pkg/testing"
//	)
func init() {
	_, thisFile, _, _ := runtime.Caller(0)
	root := filepath.Join(filepath.Dir(thisFile), "..", "..")
	if err := os.Chdir(root); err != nil {
		panic(err)
	}
}
