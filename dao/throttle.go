package dao

import (
	"time"

	"github.com/asdine/storm/v3/codec/json"
	"go.uber.org/zap"
)

// Slot holding the intake token bucket between runs.
const ThrottleKey = "intakeThrottle"

// ThrottleState is a token bucket snapshot: Tokens available at At.
type ThrottleState struct {
	Tokens float64   `json:"tokens"`
	At     time.Time `json:"at"`
}

type ThrottleDao interface {
	//Load returns the last saved snapshot, false if there is none
	Load() (ThrottleState, bool)
	//Save overwrites the snapshot
	Save(state ThrottleState) error
}

func NewThrottleDao(db Db) ThrottleDao {
	return &throttleDao{db: db}
}

type throttleDao struct {
	db Db
}

func (d throttleDao) Load() (ThrottleState, bool) {
	raw, err := d.db.GetBytes(SlotBucket, ThrottleKey)
	if err != nil {
		if !isNotFound(err) {
			zap.L().Warn("Error reading intake throttle", zap.Error(err))
		}
		return ThrottleState{}, false
	}

	var state ThrottleState
	if err := json.Codec.Unmarshal(raw, &state); err != nil {
		zap.L().Warn("Stored intake throttle is unreadable, resetting", zap.Error(err))
		return ThrottleState{}, false
	}
	return state, true
}

func (d throttleDao) Save(state ThrottleState) error {
	raw, err := json.Codec.Marshal(state)
	if err != nil {
		return err
	}
	return d.db.SetBytes(SlotBucket, ThrottleKey, raw)
}
