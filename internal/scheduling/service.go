package scheduling

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"waste_tracker/internal/models"
)

// Service owns the schedule lifecycle: creation behind the truck readiness
// gate, guarded edits, the approve/cancel decision, and deletion. Every
// method is a single independently committed transaction.
type Service struct {
	db *gorm.DB

	// overridable for tests
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// Decision is the approver's verdict on a pending schedule.
type Decision string

const (
	DecisionApprove Decision = "Approve"
	DecisionCancel  Decision = "Cancel"
)

const dateLayout = "2006-01-02"

type CreateCommand struct {
	RouteID             uint
	TruckID             uint
	GarbageType         GarbageType
	ScheduledCollection string // "YYYY-MM-DD"
	ActorID             uint
}

type UpdateCommand struct {
	Status              *Status
	Remark              *string
	GarbageType         *GarbageType
	ScheduledCollection *string
	IsEditable          *bool
}

// Create validates the command, runs the readiness gate against the
// referenced truck and inserts a new Pending schedule. The truck's
// operator is denormalized onto the schedule for the search filter.
func (s *Service) Create(cmd CreateCommand) (*models.Schedule, error) {
	if cmd.RouteID == 0 || cmd.TruckID == 0 {
		return nil, ErrValidation
	}
	if !ValidGarbageType(cmd.GarbageType) {
		return nil, ErrValidation
	}
	if err := s.validateCollectionDate(cmd.ScheduledCollection); err != nil {
		return nil, err
	}

	var truck models.Truck
	if err := s.db.First(&truck, cmd.TruckID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}
	if err := ValidateForScheduling(truck); err != nil {
		return nil, err
	}

	var route models.Route
	if err := s.db.First(&route, cmd.RouteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	schedule := models.Schedule{
		RouteID:             cmd.RouteID,
		TruckID:             cmd.TruckID,
		UserID:              truck.OperatorID,
		CreatedBy:           cmd.ActorID,
		GarbageType:         string(cmd.GarbageType),
		Status:              string(StatusPending),
		ScheduledCollection: cmd.ScheduledCollection,
		IsEditable:          true,
	}
	if err := s.db.Create(&schedule).Error; err != nil {
		return nil, err
	}
	return s.Get(schedule.ID)
}

// Update applies field changes to an editable schedule. Approval fields are
// never touched here; those change only through Decide. Writes are guarded
// by the version column, so a stale edit loses with ErrConflict instead of
// clobbering a concurrent one.
func (s *Service) Update(id uint, cmd UpdateCommand) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := s.db.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !schedule.IsEditable {
		return nil, ErrNotEditable
	}

	updates := map[string]interface{}{"version": schedule.Version + 1}
	if cmd.Status != nil {
		if !ValidStatus(*cmd.Status) || !CanTransition(Status(schedule.Status), *cmd.Status) {
			return nil, ErrValidation
		}
		updates["status"] = string(*cmd.Status)
	}
	if cmd.Remark != nil {
		updates["remark"] = *cmd.Remark
	}
	if cmd.GarbageType != nil {
		if !ValidGarbageType(*cmd.GarbageType) {
			return nil, ErrValidation
		}
		updates["garbage_type"] = string(*cmd.GarbageType)
	}
	if cmd.ScheduledCollection != nil {
		if err := s.validateCollectionDate(*cmd.ScheduledCollection); err != nil {
			return nil, err
		}
		updates["scheduled_collection"] = *cmd.ScheduledCollection
	}
	if cmd.IsEditable != nil {
		updates["is_editable"] = *cmd.IsEditable
	}

	res := s.db.Model(&models.Schedule{}).
		Where("id = ? AND version = ?", id, schedule.Version).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrConflict
	}
	return s.Get(id)
}

// Decide records the approver's verdict. The approval axis is write-once:
// the guarded UPDATE only matches while both markers are still null, so two
// approvers racing on the same schedule cannot both win.
func (s *Service) Decide(id uint, decision Decision, actorID uint) (*models.Schedule, error) {
	if decision != DecisionApprove && decision != DecisionCancel {
		return nil, ErrValidation
	}

	var schedule models.Schedule
	if err := s.db.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if schedule.ApprovedBy != nil || schedule.CancelledBy != nil {
		return nil, ErrAlreadyDecided
	}

	now := s.now()
	updates := map[string]interface{}{"version": gorm.Expr("version + 1")}
	if decision == DecisionApprove {
		updates["approved_by"] = actorID
		updates["approved_at"] = now
	} else {
		updates["cancelled_by"] = actorID
		updates["cancelled_at"] = now
	}

	res := s.db.Model(&models.Schedule{}).
		Where("id = ? AND approved_by IS NULL AND cancelled_by IS NULL", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyDecided
	}
	return s.Get(id)
}

// Delete permanently removes a schedule. There is no soft delete for
// schedules; the row is gone.
func (s *Service) Delete(id uint) error {
	res := s.db.Unscoped().Delete(&models.Schedule{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Get fetches one schedule with its reference associations resolved.
func (s *Service) Get(id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	err := s.db.Preload("Route").Preload("Truck").Preload("User").First(&schedule, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

// List returns the full collection in id order, associations resolved.
// Filtering happens in memory via Filter.Apply so badge counts can be
// computed over the same unfiltered snapshot.
func (s *Service) List() ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := s.db.Preload("Route").Preload("Truck").Preload("User").
		Order("id asc").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (s *Service) validateCollectionDate(raw string) error {
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return ErrValidation
	}
	today := s.now().Format(dateLayout)
	if d.Format(dateLayout) < today {
		return ErrValidation
	}
	return nil
}
