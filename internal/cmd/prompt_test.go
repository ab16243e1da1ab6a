package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAddr(t *testing.T) {
	type testCase struct {
		name    string
		addr    string
		wantErr bool
	}

	cases := []testCase{
		{name: "valid", addr: "192.168.1.50:6000"},
		{name: "loopback", addr: "127.0.0.1:1"},
		{name: "max port", addr: "10.0.0.1:65535"},
		{name: "missing port", addr: "192.168.1.50", wantErr: true},
		{name: "hostname not ip", addr: "switch.local:6000", wantErr: true},
		{name: "ipv6", addr: "[::1]:6000", wantErr: true},
		{name: "port zero", addr: "192.168.1.50:0", wantErr: true},
		{name: "port too large", addr: "192.168.1.50:70000", wantErr: true},
		{name: "garbage port", addr: "192.168.1.50:abc", wantErr: true},
		{name: "empty", addr: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateAddr(tc.addr)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
