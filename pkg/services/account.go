package services

import (
	"context"

	"github.com/flat-peak/go-sdk/pkg/models"
)

type AccountService interface {
	GetCurrentAccount(ctx context.Context) (*models.Account, error)
}

type LoginService interface {
	ObtainToken(ctx context.Context) (*models.AuthToken, error)
}
