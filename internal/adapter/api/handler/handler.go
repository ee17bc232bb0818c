package handler

import (
	"gamezone/internal/usecase"
)

var (
	authHandler     *AuthHandler
	productHandler  *ProductHandler
	sessionHandler  *SessionHandler
	cartHandler     *CartHandler
	checkoutHandler *CheckoutHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	sessionUseCase *usecase.SessionUseCase,
	checkoutUseCase *usecase.CheckoutUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	productHandler = NewProductHandler(catalogUseCase, sessionUseCase)
	sessionHandler = NewSessionHandler(sessionUseCase)
	cartHandler = NewCartHandler(sessionUseCase)
	checkoutHandler = NewCheckoutHandler(checkoutUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetSessionHandler() *SessionHandler {
	return sessionHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetCheckoutHandler() *CheckoutHandler {
	return checkoutHandler
}
