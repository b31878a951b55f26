package engine

import (
	"os"
	"testing"

	logger "github.com/atlas-hrms/atlas/api/logging"
)

func TestMain(m *testing.M) {
	logger.InitLogger("")
	defer logger.Sync()
	os.Exit(m.Run())
}
