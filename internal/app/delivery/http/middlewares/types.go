package middlewares

import (
	"intake-service/internal/app/config"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	RequestLog     *logrus.Logger
	InternalConfig *config.InternalConfig
}
