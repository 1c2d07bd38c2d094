package validators

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	mx  map[string]bool
	ips map[string]bool
}

func (f fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if f.mx[name] {
		return []*net.MX{{Host: "mx." + name}}, nil
	}
	return nil, errors.New("no such host")
}

func (f fakeResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	if f.ips[host] {
		return []net.IPAddr{{IP: net.IPv4(10, 0, 0, 1)}}, nil
	}
	return nil, errors.New("no such host")
}

func TestIsEmailDomainValid(t *testing.T) {
	r := fakeResolver{
		mx:  map[string]bool{"corte.digital": true},
		ips: map[string]bool{"barbearia.local": true},
	}
	ctx := context.Background()

	assert.True(t, IsEmailDomainValid(ctx, r, "dono@corte.digital"))
	assert.True(t, IsEmailDomainValid(ctx, r, "dono@barbearia.local"))
	assert.False(t, IsEmailDomainValid(ctx, r, "dono@nada.invalid"))
	assert.False(t, IsEmailDomainValid(ctx, r, "sem-arroba"))
	assert.False(t, IsEmailDomainValid(ctx, r, "@corte.digital"))
	assert.False(t, IsEmailDomainValid(ctx, r, "dono@"))
}
