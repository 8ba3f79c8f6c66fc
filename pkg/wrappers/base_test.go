package wrappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seitarof/gen-wrapper/pkg/container"
	"github.com/seitarof/gen-wrapper/pkg/protocol/catalog"
)

func TestBase_Container(t *testing.T) {
	pt, ok := catalog.Default().Lookup("ClientboundSetHealthPacket")
	require.True(t, ok)
	c, err := container.New(pt, nil)
	require.NoError(t, err)

	b := NewBase(c)
	assert.Same(t, c, b.Container())
}
