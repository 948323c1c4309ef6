package ztests

import (
	"testing"

	"github.com/brimdata/bon/ztest"
)

func TestBon(t *testing.T) {
	ztest.Run(t, ".")
}
