package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bahaaman/hitech-app/models"
	"github.com/bahaaman/hitech-app/utils"
)

func adminCtx() context.Context {
	ctx := utils.SetUserIdInContext(context.Background(), "U1")
	return utils.SetUserNameInContext(ctx, "Super Admin")
}

func seedComplaints() []*models.Complaint {
	return models.DefaultSeed(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)).Complaints
}

func TestComplaintFile_RecordsSnapshotAndHistory(t *testing.T) {
	log := NewComplaintLog(nil)

	filed, err := log.File(adminCtx(), models.NewComplaint{
		CustomerId:        "C001",
		AssignedToUserIds: []string{"U2", "U2", "U3"},
		Description:       "No signal after storm",
	}, "Alice Cyber")
	if err != nil {
		t.Fatalf("File error: %v", err)
	}

	if filed.Status != models.ComplaintStatusPending {
		t.Fatalf("new task expected PENDING, got %s", filed.Status)
	}
	if filed.CustomerName != "Alice Cyber" {
		t.Fatalf("customer name snapshot missing")
	}
	if len(filed.AssignedToUserIds) != 2 {
		t.Fatalf("assignees must be deduplicated, got %v", filed.AssignedToUserIds)
	}
	if len(filed.History) != 1 || filed.History[0].Action != "FILED" || filed.History[0].By != "Super Admin" {
		t.Fatalf("filing must be recorded in history, got %+v", filed.History)
	}
}

func TestComplaintFile_RequiresAssigneeAndDescription(t *testing.T) {
	log := NewComplaintLog(nil)

	if _, err := log.File(adminCtx(), models.NewComplaint{Description: "orphan task"}, ""); !errors.Is(err, utils.ErrorValidation) {
		t.Fatalf("missing assignees expected ErrorValidation, got %v", err)
	}
	if _, err := log.File(adminCtx(), models.NewComplaint{AssignedToUserIds: []string{"U2"}}, ""); !errors.Is(err, utils.ErrorValidation) {
		t.Fatalf("missing description expected ErrorValidation, got %v", err)
	}
	if len(log.All()) != 0 {
		t.Fatalf("rejected filings must not be stored")
	}
}

func TestComplaintResolve_OnceOnly(t *testing.T) {
	log := NewComplaintLog(seedComplaints())

	resolved, err := log.Resolve(adminCtx(), "CP1", "Replaced router")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if resolved.Status != models.ComplaintStatusResolved || resolved.ResolvedBy != "Super Admin" {
		t.Fatalf("resolution not recorded: %+v", resolved)
	}
	if resolved.ResolutionRemark != "Replaced router" {
		t.Fatalf("remark not recorded")
	}

	if _, err := log.Resolve(adminCtx(), "CP1", "again"); !errors.Is(err, utils.ErrorValidation) {
		t.Fatalf("second resolve expected ErrorValidation, got %v", err)
	}
	if _, err := log.Resolve(adminCtx(), "CP404", ""); !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("unknown task expected ErrorRecordNotFound, got %v", err)
	}
}

func TestComplaintFor_FiltersByAssignment(t *testing.T) {
	seed := models.DefaultSeed(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	log := NewComplaintLog(seed.Complaints)

	admin := seed.Users[0]
	tech := seed.Users[1]
	agent := seed.Users[2]

	if got := len(log.For(admin)); got != 1 {
		t.Fatalf("admin sees the full log, expected 1, got %d", got)
	}
	if got := len(log.For(tech)); got != 1 {
		t.Fatalf("assigned technician expected 1 task, got %d", got)
	}
	if got := len(log.For(agent)); got != 0 {
		t.Fatalf("unassigned agent expected 0 tasks, got %d", got)
	}
}

func TestComplaintReassign_AppendsHistory(t *testing.T) {
	log := NewComplaintLog(seedComplaints())

	updated, err := log.Reassign(adminCtx(), "CP1", []string{"U3"})
	if err != nil {
		t.Fatalf("Reassign error: %v", err)
	}
	if len(updated.AssignedToUserIds) != 1 || updated.AssignedToUserIds[0] != "U3" {
		t.Fatalf("assignees expected [U3], got %v", updated.AssignedToUserIds)
	}
	last := updated.History[len(updated.History)-1]
	if last.Action != "REASSIGNED" {
		t.Fatalf("reassignment must be recorded, got %+v", last)
	}

	if _, err := log.Reassign(adminCtx(), "CP1", nil); !errors.Is(err, utils.ErrorValidation) {
		t.Fatalf("empty assignee list expected ErrorValidation, got %v", err)
	}
}
