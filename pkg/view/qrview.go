package view

import (
	"context"

	"github.com/gonzalcbar02/store-controller-web/pkg/client"
)

// QRView is the public read-only view behind a scanned cabinet QR
// code: the cabinet plus its products, resolved through two
// independent fetches without a session.
type QRView struct {
	state    State
	cabinet  *client.Cabinet
	products []client.Product
	err      error
}

// ResolveQR fetches the cabinet identified by the QR code and then its
// products. An unknown code yields StateNotFound; any other fetch
// failure yields the terminal StateError.
func ResolveQR(ctx context.Context, api *client.Client, code string) *QRView {
	v := &QRView{state: StateLoading}

	cabinet, err := api.ResolveCabinetQR(ctx, code)
	if err != nil {
		v.err = err
		if client.IsNotFound(err) {
			v.state = StateNotFound
		} else {
			v.state = StateError
		}
		return v
	}

	products, err := api.ListProducts(ctx, cabinet.ID)
	if err != nil {
		v.err = err
		v.state = StateError
		return v
	}

	v.cabinet = cabinet
	v.products = products
	v.state = StateLoaded
	return v
}

// State returns the resolution state.
func (v *QRView) State() State {
	return v.state
}

// Cabinet returns the resolved cabinet, nil unless StateLoaded.
func (v *QRView) Cabinet() *client.Cabinet {
	return v.cabinet
}

// Products returns the resolved products, nil unless StateLoaded.
func (v *QRView) Products() []client.Product {
	return v.products
}

// Err returns the failure, nil unless StateNotFound or StateError.
func (v *QRView) Err() error {
	return v.err
}
