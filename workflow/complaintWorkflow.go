package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bahaaman/hitech-app/config"
	"github.com/bahaaman/hitech-app/models"
	"github.com/bahaaman/hitech-app/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ComplaintLog is the technician task log. Tasks are filed by admins,
// assigned to one or more users, and resolved exactly once; every assignment
// and resolution is appended to the task's history trail.
type ComplaintLog struct {
	mu         sync.Mutex
	logger     *logrus.Logger
	now        func() time.Time
	newId      func() string
	complaints []*models.Complaint
}

func NewComplaintLog(seed []*models.Complaint) *ComplaintLog {
	log := &ComplaintLog{
		logger: config.GetLogger(),
		now:    time.Now,
		newId:  uuid.NewString,
	}
	for _, c := range seed {
		log.complaints = append(log.complaints, c.Clone())
	}
	return log
}

// File creates a PENDING task. The customer name, when a customer is linked,
// is a snapshot supplied by the caller at filing time. The acting user is
// taken from the context.
func (cl *ComplaintLog) File(ctx context.Context, input models.NewComplaint, customerName string) (*models.Complaint, error) {
	if err := utils.ValidateStruct(input); err != nil {
		config.LogError(cl.logger, "complaintWorkflow.go", "File", "ValidateStruct", input.Description, err)
		return nil, err
	}

	by, _ := utils.GetUserNameFromContext(ctx)

	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := cl.now()
	complaint := &models.Complaint{
		ID:                cl.newId(),
		CustomerId:        input.CustomerId,
		CustomerName:      customerName,
		AssignedToUserIds: utils.UniqueSlice(input.AssignedToUserIds),
		Description:       input.Description,
		Status:            models.ComplaintStatusPending,
		Date:              models.NewDate(now),
		History: []models.ComplaintEvent{
			{Timestamp: now, Action: "FILED", By: by},
		},
	}
	cl.complaints = append(cl.complaints, complaint)

	cl.logger.WithFields(logrus.Fields{
		"module":    "complaints",
		"complaint": complaint.ID,
		"assignees": complaint.AssignedToUserIds,
	}).Info("task filed")

	return complaint.Clone(), nil
}

// Reassign replaces the task's assignee list and records the change.
func (cl *ComplaintLog) Reassign(ctx context.Context, id string, userIds []string) (*models.Complaint, error) {
	if len(userIds) == 0 {
		return nil, fmt.Errorf("%w: at least one assignee required", utils.ErrorValidation)
	}

	by, _ := utils.GetUserNameFromContext(ctx)

	cl.mu.Lock()
	defer cl.mu.Unlock()

	complaint := cl.find(id)
	if complaint == nil {
		return nil, fmt.Errorf("%w: complaint %s", utils.ErrorRecordNotFound, id)
	}

	complaint.AssignedToUserIds = utils.UniqueSlice(userIds)
	complaint.History = append(complaint.History, models.ComplaintEvent{
		Timestamp: cl.now(),
		Action:    "REASSIGNED",
		By:        by,
		Details:   fmt.Sprintf("assignees: %v", complaint.AssignedToUserIds),
	})

	return complaint.Clone(), nil
}

// Resolve flips a PENDING task to RESOLVED, recording who closed it and the
// remark. Resolving an already-resolved task is rejected.
func (cl *ComplaintLog) Resolve(ctx context.Context, id string, remark string) (*models.Complaint, error) {
	by, _ := utils.GetUserNameFromContext(ctx)

	cl.mu.Lock()
	defer cl.mu.Unlock()

	complaint := cl.find(id)
	if complaint == nil {
		return nil, fmt.Errorf("%w: complaint %s", utils.ErrorRecordNotFound, id)
	}
	if complaint.Status == models.ComplaintStatusResolved {
		return nil, fmt.Errorf("%w: complaint %s already resolved", utils.ErrorValidation, id)
	}

	complaint.Status = models.ComplaintStatusResolved
	complaint.ResolvedBy = by
	complaint.ResolutionRemark = remark
	complaint.History = append(complaint.History, models.ComplaintEvent{
		Timestamp: cl.now(),
		Action:    "RESOLVED",
		By:        by,
		Details:   remark,
	})

	cl.logger.WithFields(logrus.Fields{
		"module":    "complaints",
		"complaint": id,
		"by":        by,
	}).Info("task resolved")

	return complaint.Clone(), nil
}

// For returns the tasks visible to a user: admins see the full log, everyone
// else only what is assigned to them.
func (cl *ComplaintLog) For(user *models.User) []*models.Complaint {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	var out []*models.Complaint
	for _, c := range cl.complaints {
		if user.Role == models.UserRoleAdmin || utils.ContainsSlice(c.AssignedToUserIds, user.ID) {
			out = append(out, c.Clone())
		}
	}
	return out
}

func (cl *ComplaintLog) All() []*models.Complaint {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	out := make([]*models.Complaint, 0, len(cl.complaints))
	for _, c := range cl.complaints {
		out = append(out, c.Clone())
	}
	return out
}

func (cl *ComplaintLog) find(id string) *models.Complaint {
	for _, c := range cl.complaints {
		if c.ID == id {
			return c
		}
	}
	return nil
}
