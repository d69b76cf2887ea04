package workflow

import (
	"fmt"
	"sync"

	"github.com/bahaaman/hitech-app/config"
	"github.com/bahaaman/hitech-app/models"
	"github.com/bahaaman/hitech-app/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UserRegistry holds console accounts. Login itself stays in the host (a
// plain password comparison against FindByUsername); the registry only owns
// membership and password updates.
type UserRegistry struct {
	mu     sync.Mutex
	logger *logrus.Logger
	newId  func() string
	users  []*models.User
}

func NewUserRegistry(seed []*models.User) *UserRegistry {
	reg := &UserRegistry{
		logger: config.GetLogger(),
		newId:  uuid.NewString,
	}
	for _, u := range seed {
		reg.users = append(reg.users, u.Clone())
	}
	return reg
}

func (r *UserRegistry) Add(input models.NewUser) (*models.User, error) {
	if err := utils.ValidateStruct(input); err != nil {
		config.LogError(r.logger, "userWorkflow.go", "Add", "ValidateStruct", input.Username, err)
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == input.Username {
			return nil, fmt.Errorf("%w: username %s already taken", utils.ErrorValidation, input.Username)
		}
	}

	user := &models.User{
		ID:          r.newId(),
		Name:        input.Name,
		Username:    input.Username,
		Password:    input.Password,
		Role:        input.Role,
		Permissions: append([]models.View(nil), input.Permissions...),
	}
	r.users = append(r.users, user)

	r.logger.WithFields(logrus.Fields{
		"module":   "users",
		"userId":   user.ID,
		"username": user.Username,
		"role":     user.Role,
	}).Info("user added")

	return user.Clone(), nil
}

func (r *UserRegistry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			r.logger.WithFields(logrus.Fields{
				"module": "users",
				"userId": id,
			}).Info("user removed")
			return nil
		}
	}
	return fmt.Errorf("%w: user %s", utils.ErrorRecordNotFound, id)
}

func (r *UserRegistry) UpdatePassword(id string, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: password must not be empty", utils.ErrorValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			u.Password = newPassword
			return nil
		}
	}
	return fmt.Errorf("%w: user %s", utils.ErrorRecordNotFound, id)
}

func (r *UserRegistry) Get(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: user %s", utils.ErrorRecordNotFound, id)
}

func (r *UserRegistry) FindByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return u.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: username %s", utils.ErrorRecordNotFound, username)
}

func (r *UserRegistry) All() []*models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Clone())
	}
	return out
}
