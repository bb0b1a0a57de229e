package craftopia

import (
	"context"
	"net/http"
)

// Маршруты логина по ролям
const (
	pathCustomerLogin = "/customers/login"
	pathArtisanLogin  = "/artisans/login"
	pathAdminLogin    = "/admin/login"
)

// LoginCustomer выполняет вход с учетными данными заказчика
func (c *Client) LoginCustomer(ctx context.Context, email, password string) (*LoginResult, error) {
	return c.login(ctx, pathCustomerLogin, email, password)
}

// LoginArtisan выполняет вход с учетными данными мастера
func (c *Client) LoginArtisan(ctx context.Context, email, password string) (*LoginResult, error) {
	return c.login(ctx, pathArtisanLogin, email, password)
}

// LoginAdmin выполняет вход с учетными данными администратора
func (c *Client) LoginAdmin(ctx context.Context, email, password string) (*LoginResult, error) {
	return c.login(ctx, pathAdminLogin, email, password)
}

func (c *Client) login(ctx context.Context, path, email, password string) (*LoginResult, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, path, "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:  resp.Token,
		Role:   resp.Role,
		UserID: resp.ID,
	}, nil
}
