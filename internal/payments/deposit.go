package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/models"
)

// DepositLinker builds Mercado Pago checkout links for appointment
// deposits. Deposits are a fifth of the service price, floor 10 units.
type DepositLinker struct {
	prefs preference.Client
}

func NewDepositLinker(accessToken string) (*DepositLinker, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("payments: missing access token")
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("payments: %w", err)
	}

	return &DepositLinker{prefs: preference.NewClient(cfg)}, nil
}

func DepositAmount(servicePrice int) int {
	if servicePrice <= 0 {
		return 0
	}
	deposit := servicePrice / 5
	if deposit < 10 {
		deposit = 10
	}
	if deposit > servicePrice {
		deposit = servicePrice
	}
	return deposit
}

// LinkFor creates a checkout preference for the appointment's deposit and
// returns the hosted payment URL.
func (l *DepositLinker) LinkFor(ctx context.Context, ap *models.Appointment) (string, error) {
	deposit := DepositAmount(ap.ServicePrice)
	if deposit == 0 {
		return "", httperr.ErrBusiness("no_deposit_required")
	}

	req := preference.Request{
		ExternalReference: fmt.Sprintf("appointment-%d", ap.ID),
		Items: []preference.ItemRequest{
			{
				Title:       fmt.Sprintf("Deposit: %s with %s", ap.ServiceName, ap.BraiderName),
				Description: fmt.Sprintf("%s %s", ap.Date, ap.TimeSlot),
				Quantity:    1,
				UnitPrice:   float64(deposit),
			},
		},
	}

	resp, err := l.prefs.Create(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.InitPoint, nil
}
