// file: internals/features/finance/tuition_fees/service/midtrans.go
package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"akademiku_backend/internals/features/finance/tuition_fees/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans wires the snap client at bootstrap. Sandbox unless
// UseProduction(true) ran first.
func InitMidtrans(serverKey string) {
	env := midtrans.Sandbox
	if midtransProduction {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

var midtransProduction bool

// UseProduction flips the environment; call before InitMidtrans.
func UseProduction(on bool) {
	midtransProduction = on
}

/* =========================================================
   Snap token generation
========================================================= */

type PayerInput struct {
	Name  string
	Email string
	Phone string
}

// GenerateSnapToken builds a one-item snap transaction for a tuition invoice.
// The invoice's order id doubles as the gateway OrderID, so re-issuing a token
// for the same invoice reuses the same order on the gateway side.
func GenerateSnapToken(fee model.TuitionFeeModel, payer PayerInput) (string, string, error) {
	if fee.TuitionFeesAmount <= 0 {
		return "", "", errors.New("invalid tuition amount")
	}
	if fee.TuitionFeesOrderID == nil || *fee.TuitionFeesOrderID == "" {
		return "", "", errors.New("order id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  *fee.TuitionFeesOrderID,
			GrossAmt: int64(fee.TuitionFeesAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payer.Name,
			Email: payer.Email,
			Phone: payer.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       *fee.TuitionFeesOrderID,
				Price:    int64(fee.TuitionFeesAmount),
				Qty:      1,
				Name:     truncate(fee.TuitionFeesTitle, 50),
				Category: "tuition",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
