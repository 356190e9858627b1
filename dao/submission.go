package dao

import (
	"github.com/asdine/storm/v3/codec/json"
	"github.com/dilshat/lead-store/model"
	"go.uber.org/zap"
)

// Slot holding the submission collection.
const SubmissionsKey = "formSubmissions"

type SubmissionDao interface {
	//Load returns the persisted collection, or an empty one if the slot is missing or unreadable
	Load() []model.Submission
	//Save overwrites the slot with the whole collection
	Save(submissions []model.Submission) error
}

func NewSubmissionDao(db Db) SubmissionDao {
	return &submissionDao{db: db}
}

type submissionDao struct {
	db Db
}

func (d submissionDao) Load() []model.Submission {
	raw, err := d.db.GetBytes(SlotBucket, SubmissionsKey)
	if err != nil {
		if !isNotFound(err) {
			zap.L().Warn("Error reading submissions, starting empty", zap.Error(err))
		}
		return []model.Submission{}
	}

	var submissions []model.Submission
	if err := json.Codec.Unmarshal(raw, &submissions); err != nil {
		zap.L().Warn("Stored submissions are unreadable, starting empty", zap.Error(err))
		return []model.Submission{}
	}
	if submissions == nil {
		submissions = []model.Submission{}
	}

	return submissions
}

func (d submissionDao) Save(submissions []model.Submission) error {
	if submissions == nil {
		submissions = []model.Submission{}
	}

	raw, err := json.Codec.Marshal(submissions)
	if err != nil {
		return err
	}

	return d.db.SetBytes(SlotBucket, SubmissionsKey, raw)
}
