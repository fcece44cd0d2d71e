package signatures

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Provider abstracts the external e-signature vendor. The simulated
// provider stands in until a real integration is configured.
type Provider interface {
	Send(ctx context.Context, doc Document) (providerRef string, err error)
}

type SimulatedProvider struct{}

func (SimulatedProvider) Send(_ context.Context, doc Document) (string, error) {
	return fmt.Sprintf("sim-%s", uuid.NewString()), nil
}
