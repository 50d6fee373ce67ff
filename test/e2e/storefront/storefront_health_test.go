package storefront_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

// TestHealthEndpoints verifies both probes on a fresh container.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupStorefrontContainer(t)
	defer cleanup()

	client := shopsdk.NewClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	health, err = client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "disabled", health.Checks.Federated)
	require.Equal(t, "log", health.Checks.Mail)

	t.Logf("storefront %s healthy after %s", health.Version, health.Uptime)
}
