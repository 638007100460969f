package repository

import (
	"context"

	"gorm.io/gorm"

	"outlaw/internal/model"
)

// TimeSlotRepository defines time slot persistence operations.
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *model.TimeSlot) error
	FindByID(ctx context.Context, id string) (*model.TimeSlot, error)
	List(ctx context.Context) ([]model.TimeSlot, error)
	ListOpen(ctx context.Context) ([]model.TimeSlot, error)
	ListByCreator(ctx context.Context, creatorID string) ([]model.TimeSlot, error)
	ListBySME(ctx context.Context, smeID string) ([]model.TimeSlot, error)
	// MarkBooked claims an open slot. It reports false when the slot was no longer open.
	MarkBooked(ctx context.Context, id, smeID string, questions []string) (bool, error)
	// MarkCancelled releases a booked slot. It reports false when the slot was not booked.
	MarkCancelled(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) error
}

type timeSlotRepository struct {
	db *gorm.DB
}

// NewTimeSlotRepository creates a GORM-backed time slot repository.
func NewTimeSlotRepository(db *gorm.DB) TimeSlotRepository {
	return &timeSlotRepository{db: db}
}

func (r *timeSlotRepository) Create(ctx context.Context, slot *model.TimeSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *timeSlotRepository) FindByID(ctx context.Context, id string) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepository) List(ctx context.Context) ([]model.TimeSlot, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *timeSlotRepository) ListOpen(ctx context.Context) ([]model.TimeSlot, error) {
	return r.find(r.db.WithContext(ctx).Where("is_booked = ?", false))
}

func (r *timeSlotRepository) ListByCreator(ctx context.Context, creatorID string) ([]model.TimeSlot, error) {
	return r.find(r.db.WithContext(ctx).Where("creator_id = ?", creatorID))
}

func (r *timeSlotRepository) ListBySME(ctx context.Context, smeID string) ([]model.TimeSlot, error) {
	return r.find(r.db.WithContext(ctx).Where("sme_id = ? AND is_booked = ?", smeID, true))
}

func (r *timeSlotRepository) find(q *gorm.DB) ([]model.TimeSlot, error) {
	slots := []model.TimeSlot{}
	if err := q.Order("created_at").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// MarkBooked sets the SME and the booked flag in one statement guarded on is_booked = false.
// Questions are only replaced when a non-empty list is given.
func (r *timeSlotRepository) MarkBooked(ctx context.Context, id, smeID string, questions []string) (bool, error) {
	columns := []string{"sme_id", "is_booked"}
	update := &model.TimeSlot{SMEID: &smeID, IsBooked: true}
	if len(questions) > 0 {
		columns = append(columns, "questions")
		update.Questions = questions
	}

	res := r.db.WithContext(ctx).Model(&model.TimeSlot{}).
		Where("id = ? AND is_booked = ?", id, false).
		Select(columns).
		Updates(update)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// MarkCancelled clears the SME, the booked flag and the questions, guarded on is_booked = true.
func (r *timeSlotRepository) MarkCancelled(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.TimeSlot{}).
		Where("id = ? AND is_booked = ?", id, true).
		Select("sme_id", "is_booked", "questions").
		Updates(&model.TimeSlot{SMEID: nil, IsBooked: false, Questions: []string{}})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *timeSlotRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.TimeSlot{}).Error
}
