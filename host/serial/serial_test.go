package serial

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsRPMsgDevice(t *testing.T) {
	require.True(t, IsRPMsgDevice("/dev/rpmsg_pru30"))
	require.True(t, IsRPMsgDevice("/dev/rpmsg_pru31"))
	require.False(t, IsRPMsgDevice("/dev/ttyACM0"))
}

func TestOpenNilConfig(t *testing.T) {
	_, err := Open(nil)
	require.Error(t, err)
}

func TestOpenMissingSerialPort(t *testing.T) {
	_, err := Open(DefaultConfig(filepath.Join(t.TempDir(), "ttyNone")))
	require.Error(t, err)
}

func TestCharDeviceReadWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpmsg_fake")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	d, err := OpenCharDevice(path)
	require.NoError(t, err)
	n, err := d.Write([]byte("start"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.NoError(t, d.Flush())
	require.NoError(t, d.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "start", string(data))
}

func TestOpenCharDeviceMissing(t *testing.T) {
	_, err := OpenCharDevice(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
