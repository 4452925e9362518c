package memory_test

import (
	"testing"

	"github.com/gitfolio/gitfolio/pkg/repository/memory"
	"github.com/gitfolio/gitfolio/pkg/repository/testhelper"
)

func TestMemoryDatabase(t *testing.T) {
	testhelper.TestAll(t, memory.New())
}
