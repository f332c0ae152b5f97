package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/penguinfit/penguinfit-backend/internal/dto"
	"github.com/penguinfit/penguinfit-backend/internal/models"
	"gorm.io/gorm"
)

type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

// HandleWebhookEvent applies a RevenueCat event to the subscription table.
// Unknown event types are acknowledged and ignored.
func (s *SubscriptionService) HandleWebhookEvent(event *dto.RevenueCatEvent) error {
	switch event.Type {
	case "INITIAL_PURCHASE":
		return s.handleInitialPurchase(event)
	case "RENEWAL":
		return s.handleRenewal(event)
	case "CANCELLATION":
		return s.handleCancellation(event)
	case "EXPIRATION":
		return s.handleExpiration(event)
	default:
		return nil
	}
}

// HasPremium reports whether the user currently holds an active entitlement.
// This is the source of truth for the hasPremium flag stamped into the
// player document on every read.
func (s *SubscriptionService) HasPremium(userID uuid.UUID, now time.Time) bool {
	var sub models.Subscription
	err := s.db.Where("user_id = ?", userID).
		Order("current_period_end DESC").
		First(&sub).Error
	if err != nil {
		return false
	}
	return sub.Active(now)
}

func (s *SubscriptionService) handleInitialPurchase(event *dto.RevenueCatEvent) error {
	sub := models.Subscription{
		ID:                 uuid.New(),
		RevenueCatID:       event.AppUserID,
		ProductID:          event.ProductID,
		Status:             "active",
		CurrentPeriodStart: msToTime(event.PurchasedAtMs),
		CurrentPeriodEnd:   msToTime(event.ExpirationAtMs),
	}

	// RevenueCat app_user_id carries our user uuid.
	if userID, err := uuid.Parse(event.AppUserID); err == nil {
		var user models.User
		if err := s.db.Where("id = ?", userID).First(&user).Error; err == nil {
			sub.UserID = user.ID
		}
	}

	return s.db.Create(&sub).Error
}

func (s *SubscriptionService) handleRenewal(event *dto.RevenueCatEvent) error {
	var sub models.Subscription
	if err := s.db.Where("revenuecat_id = ?", event.AppUserID).First(&sub).Error; err != nil {
		return fmt.Errorf("subscription not found for renewal: %w", err)
	}

	return s.db.Model(&sub).Updates(map[string]interface{}{
		"status":               "active",
		"current_period_end":   msToTime(event.ExpirationAtMs),
		"current_period_start": msToTime(event.PurchasedAtMs),
	}).Error
}

func (s *SubscriptionService) handleCancellation(event *dto.RevenueCatEvent) error {
	return s.db.Model(&models.Subscription{}).
		Where("revenuecat_id = ?", event.AppUserID).
		Update("status", "cancelled").Error
}

func (s *SubscriptionService) handleExpiration(event *dto.RevenueCatEvent) error {
	return s.db.Model(&models.Subscription{}).
		Where("revenuecat_id = ?", event.AppUserID).
		Update("status", "expired").Error
}

func msToTime(ms int64) time.Time {
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond))
}
