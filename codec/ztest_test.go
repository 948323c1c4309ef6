package codec_test

import (
	"testing"

	"github.com/brimdata/bon/ztest"
)

func TestZTest(t *testing.T) {
	ztest.Run(t, "testdata")
}
