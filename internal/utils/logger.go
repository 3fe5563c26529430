package utils

import "go.uber.org/zap"

func NewLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopmentConfig().Build()
	}
	return zap.NewProduction()
}
