package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Houses

func (c *Client) ListHouses(ctx context.Context, userID uint) ([]House, error) {
	var env housesEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/houses/user/%d", userID), nil, &env); err != nil {
		return nil, err
	}
	return env.Houses, nil
}

func (c *Client) GetHouse(ctx context.Context, id uint) (*House, error) {
	var env houseEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/houses/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.House, nil
}

func (c *Client) CreateHouse(ctx context.Context, params HouseParams) (*House, error) {
	var env houseEnvelope
	if err := c.do(ctx, http.MethodPost, "/houses", params, &env); err != nil {
		return nil, err
	}
	return &env.House, nil
}

func (c *Client) UpdateHouse(ctx context.Context, id uint, params HouseParams) (*House, error) {
	var env houseEnvelope
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/houses/%d", id), params, &env); err != nil {
		return nil, err
	}
	return &env.House, nil
}

func (c *Client) DeleteHouse(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/houses/%d", id), nil, nil)
}

// Cabinets

func (c *Client) ListCabinets(ctx context.Context, houseID uint) ([]Cabinet, error) {
	var env cabinetsEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/cabinets/house/%d", houseID), nil, &env); err != nil {
		return nil, err
	}
	return env.Cabinets, nil
}

func (c *Client) GetCabinet(ctx context.Context, id uint) (*Cabinet, error) {
	var env cabinetEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/cabinets/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Cabinet, nil
}

// ResolveCabinetQR resolves a cabinet from its public QR identifier.
// Works without a session.
func (c *Client) ResolveCabinetQR(ctx context.Context, code string) (*Cabinet, error) {
	var env cabinetEnvelope
	if err := c.do(ctx, http.MethodGet, "/qr/cabinets/"+url.PathEscape(code), nil, &env); err != nil {
		return nil, err
	}
	return &env.Cabinet, nil
}

func (c *Client) CreateCabinet(ctx context.Context, params CabinetParams) (*Cabinet, error) {
	var env cabinetEnvelope
	if err := c.do(ctx, http.MethodPost, "/cabinets", params, &env); err != nil {
		return nil, err
	}
	return &env.Cabinet, nil
}

func (c *Client) UpdateCabinet(ctx context.Context, id uint, params CabinetParams) (*Cabinet, error) {
	var env cabinetEnvelope
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/cabinets/%d", id), params, &env); err != nil {
		return nil, err
	}
	return &env.Cabinet, nil
}

func (c *Client) DeleteCabinet(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cabinets/%d", id), nil, nil)
}

// Products

func (c *Client) ListProducts(ctx context.Context, cabinetID uint) ([]Product, error) {
	var env productsEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/cabinet/%d", cabinetID), nil, &env); err != nil {
		return nil, err
	}
	return env.Products, nil
}

func (c *Client) GetProduct(ctx context.Context, id uint) (*Product, error) {
	var env productEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Product, nil
}

func (c *Client) CreateProduct(ctx context.Context, params ProductParams) (*Product, error) {
	var env productEnvelope
	if err := c.do(ctx, http.MethodPost, "/products", params, &env); err != nil {
		return nil, err
	}
	return &env.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, params ProductParams) (*Product, error) {
	var env productEnvelope
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), params, &env); err != nil {
		return nil, err
	}
	return &env.Product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}
