package homes_test

import (
	"testing"

	"booking-api/feature/homes"
	"booking-api/feature/homes/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFeature(t *testing.T) {
	f := homes.NewFeature(repository.NewInMemoryRepository(), zap.NewNop(), homes.Config{})

	assert.Equal(t, "homes", f.Name())
	assert.True(t, f.IsEnabled())
	assert.NotNil(t, f.Service())
	assert.NoError(t, f.Load(fiber.New()))
}
