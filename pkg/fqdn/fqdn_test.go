package fqdn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fqdntrie/fqdntrie/pkg/fqdn"
)

func TestRootIsUniversalAncestor(t *testing.T) {
	root := fqdn.Root()
	assert.True(t, root.IsRoot())
	assert.Equal(t, ".", root.String())
	assert.True(t, fqdn.New("mail.orange.com").IsSubdomainOf(root))
	assert.True(t, root.IsSubdomainOf(root))
}

func TestNewStripsTrailingDot(t *testing.T) {
	assert.True(t, fqdn.New("orange.com").Equal(fqdn.New("orange.com.")))
}

func TestEqualIsCaseInsensitive(t *testing.T) {
	assert.True(t, fqdn.New("Orange.COM").Equal(fqdn.New("orange.com")))
	assert.False(t, fqdn.New("orange.com").Equal(fqdn.New("blue.com")))
}

func TestIsSubdomainOfRespectsLabelBoundaries(t *testing.T) {
	mail := fqdn.New("mail.orange.com")
	orange := fqdn.New("orange.com")
	notOrange := fqdn.New("notorange.com")

	assert.True(t, mail.IsSubdomainOf(orange))
	assert.True(t, orange.IsSubdomainOf(orange))
	assert.False(t, orange.IsSubdomainOf(mail))
	assert.False(t, notOrange.IsSubdomainOf(orange))
}

func TestIsSubdomainOfCaseInsensitive(t *testing.T) {
	assert.True(t, fqdn.New("WWW.Orange.Com").IsSubdomainOf(fqdn.New("orange.com")))
}
