package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// githubLinkPattern accepts links of the form github.com/<owner>/<repo>,
// with or without a scheme prefix.
var githubLinkPattern = regexp.MustCompile(`github\.com/([^/\s]+)/([^/\s]+)`)

// slotTxOptions serializes every transaction that reads or hands out
// confirmed slots. Under read committed, two concurrent writers could both
// observe a free slot or both promote the same queued team.
var slotTxOptions = &sql.TxOptions{Isolation: sql.LevelSerializable}

// TeamService handles business logic for teams: capacity limits, the
// confirmed-slot state machine and captain rules.
//
// State transitions that touch more than one team (demoting a confirmed team
// and promoting the earliest queued one) run inside a single transaction so
// the confirmed-slot count never exceeds max_teams.
type TeamService struct {
	db        *gorm.DB
	validator *validator.Validate
	github    GitHubServiceInterface
}

// NewTeamService creates a new team service
func NewTeamService(db *gorm.DB, validator *validator.Validate, github GitHubServiceInterface) *TeamService {
	return &TeamService{
		db:        db,
		validator: validator,
		github:    github,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name               string      `json:"name" validate:"required,min=1,max=100"`
	GithubLink         string      `json:"github_link" validate:"required,max=400"`
	ProjectName        string      `json:"project_name" validate:"max=100"`
	ProjectDescription string      `json:"project_description" validate:"max=1000"`
	IsFull             bool        `json:"is_full"`
	MemberIDs          []uuid.UUID `json:"members"`
	Technologies       []string    `json:"technologies"`
}

// UpdateTeamRequest represents the request to update a team.
// Nil fields are left unchanged; a non-nil MemberIDs replaces the roster.
type UpdateTeamRequest struct {
	Name               *string      `json:"name" validate:"omitempty,min=1,max=100"`
	GithubLink         *string      `json:"github_link" validate:"omitempty,max=400"`
	ProjectName        *string      `json:"project_name" validate:"omitempty,max=100"`
	ProjectDescription *string      `json:"project_description" validate:"omitempty,max=1000"`
	IsFull             *bool        `json:"is_full"`
	MemberIDs          *[]uuid.UUID `json:"members"`
	Technologies       *[]string    `json:"technologies"`
}

// TeamMemberResponse is the member representation embedded in team responses
type TeamMemberResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Form      string    `json:"form"`
	DiscordID string    `json:"discord_id"`
	IsCaptain bool      `json:"is_captain"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID                 uuid.UUID            `json:"id"`
	Name               string               `json:"name"`
	GithubLink         string               `json:"github_link"`
	ProjectName        string               `json:"project_name"`
	ProjectDescription string               `json:"project_description"`
	IsFull             bool                 `json:"is_full"`
	Confirmed          bool                 `json:"confirmed"`
	Ready              *time.Time           `json:"ready,omitempty"`
	Members            []TeamMemberResponse `json:"members"`
	Technologies       []string             `json:"technologies"`
	CreatedAt          string               `json:"created_at"`
	UpdatedAt          string               `json:"updated_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a team with the acting user as captain.
//
// The roster size check runs before the edit-window check so an oversized
// roster is reported as a size error even after the deadline.
func (s *TeamService) Create(ctx context.Context, actorID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	owner, repo, ok := parseGithubLink(req.GithubLink)
	if !ok {
		return nil, apperrors.ErrInvalidGithubLink
	}
	if s.github != nil && s.github.Enabled() {
		exists, err := s.github.RepoExists(ctx, owner, repo)
		if err == nil && !exists {
			return nil, apperrors.ErrGithubRepoNotFound
		}
	}

	var result *TeamResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := repository.NewTeamRepository(tx)
		userRepo := repository.NewUserRepository(tx)
		settingRepo := repository.NewSettingRepository(tx)

		actor, err := userRepo.GetByID(actorID)
		if err != nil {
			return apperrors.ErrUserNotFound
		}
		if actor.TeamID != nil {
			return apperrors.ErrAlreadyHasTeam
		}

		if hasDuplicateIDs(req.MemberIDs) {
			return apperrors.ErrDuplicateMember
		}
		memberIDs := req.MemberIDs
		if !containsID(memberIDs, actor.ID) {
			memberIDs = append(memberIDs, actor.ID)
		}

		minUsers, maxUsers, maxTeams, err := teamBounds(settingRepo)
		if err != nil {
			return err
		}
		if len(memberIDs) > maxUsers {
			return apperrors.ErrTooManyMembers
		}

		if existing, err := teamRepo.GetByName(req.Name); err == nil && existing != nil {
			return apperrors.ErrTeamExists
		}

		if err := checkTeamEditable(tx); err != nil {
			return err
		}

		members, err := userRepo.GetByIDs(memberIDs)
		if err != nil {
			return err
		}
		if len(members) != len(memberIDs) {
			return apperrors.ErrUserNotFound
		}
		for _, member := range members {
			if member.TeamID != nil {
				return apperrors.ErrUserAlreadyInTeam
			}
		}

		technologies, err := resolveTechnologies(tx, req.Technologies)
		if err != nil {
			return err
		}

		team := &models.Team{
			Name:               req.Name,
			GithubLink:         req.GithubLink,
			ProjectName:        req.ProjectName,
			ProjectDescription: req.ProjectDescription,
			IsFull:             req.IsFull,
			Technologies:       technologies,
		}
		if err := teamRepo.Create(team); err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}
		if err := userRepo.AssignTeam(memberIDs, team.ID); err != nil {
			return fmt.Errorf("failed to assign members: %w", err)
		}

		actor.IsCaptain = true
		actor.TeamID = &team.ID
		if err := userRepo.Update(actor); err != nil {
			return fmt.Errorf("failed to flag captain: %w", err)
		}

		if err := s.applySlotRules(tx, team, len(memberIDs), minUsers, maxTeams, false); err != nil {
			return err
		}

		if err := writeAudit(tx, actorID, "create_team", req); err != nil {
			return err
		}

		loaded, err := teamRepo.GetWithMembers(team.ID)
		if err != nil {
			return err
		}
		result = toTeamResponse(loaded)
		return nil
	}, slotTxOptions)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":   result.ID,
		"confirmed": result.Confirmed,
	}).Info("team created")
	return result, nil
}

// Update applies a partial team update on behalf of the captain.
func (s *TeamService) Update(ctx context.Context, actorID uuid.UUID, teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	if req.GithubLink != nil {
		owner, repo, ok := parseGithubLink(*req.GithubLink)
		if !ok {
			return nil, apperrors.ErrInvalidGithubLink
		}
		if s.github != nil && s.github.Enabled() {
			exists, err := s.github.RepoExists(ctx, owner, repo)
			if err == nil && !exists {
				return nil, apperrors.ErrGithubRepoNotFound
			}
		}
	}

	var result *TeamResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := repository.NewTeamRepository(tx)
		userRepo := repository.NewUserRepository(tx)
		settingRepo := repository.NewSettingRepository(tx)

		team, err := teamRepo.GetWithMembers(teamID)
		if err != nil {
			return apperrors.ErrTeamNotFound
		}
		if err := requireCaptain(userRepo, actorID, team.ID); err != nil {
			return err
		}

		minUsers, maxUsers, maxTeams, err := teamBounds(settingRepo)
		if err != nil {
			return err
		}

		before := make([]uuid.UUID, 0, len(team.Members))
		for _, member := range team.Members {
			before = append(before, member.ID)
		}
		after := before

		if req.MemberIDs != nil {
			after = *req.MemberIDs
			if hasDuplicateIDs(after) {
				return apperrors.ErrDuplicateMember
			}
			if len(after) > maxUsers {
				return apperrors.ErrTooManyMembers
			}
			if !sameIDSet(before, after) {
				if err := checkTeamEditable(tx); err != nil {
					return err
				}
				joining := diffIDs(after, before)
				if len(joining) > 0 {
					users, err := userRepo.GetByIDs(joining)
					if err != nil {
						return err
					}
					if len(users) != len(joining) {
						return apperrors.ErrUserNotFound
					}
					for _, user := range users {
						if user.TeamID != nil {
							return apperrors.ErrUserAlreadyInTeam
						}
					}
				}

				for _, leavingID := range diffIDs(before, after) {
					if err := userRepo.RemoveFromTeam(leavingID); err != nil {
						return err
					}
				}
				if len(joining) > 0 {
					if err := userRepo.AssignTeam(joining, team.ID); err != nil {
						return err
					}
				}
			}
		}

		if req.Name != nil && *req.Name != team.Name {
			if existing, err := teamRepo.GetByName(*req.Name); err == nil && existing != nil {
				return apperrors.ErrTeamExists
			}
			team.Name = *req.Name
		}
		if req.GithubLink != nil {
			team.GithubLink = *req.GithubLink
		}
		if req.ProjectName != nil {
			team.ProjectName = *req.ProjectName
		}
		if req.ProjectDescription != nil {
			team.ProjectDescription = *req.ProjectDescription
		}
		if req.IsFull != nil {
			team.IsFull = *req.IsFull
		}
		if req.Technologies != nil {
			technologies, err := resolveTechnologies(tx, *req.Technologies)
			if err != nil {
				return err
			}
			if err := tx.Model(team).Association("Technologies").Replace(technologies); err != nil {
				return err
			}
		}

		wasConfirmed := team.Confirmed
		if err := s.applySlotRules(tx, team, len(after), minUsers, maxTeams, wasConfirmed); err != nil {
			return err
		}

		if err := writeAudit(tx, actorID, "update_team", req); err != nil {
			return err
		}

		loaded, err := teamRepo.GetWithMembers(team.ID)
		if err != nil {
			return err
		}
		result = toTeamResponse(loaded)
		return nil
	}, slotTxOptions)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":   result.ID,
		"confirmed": result.Confirmed,
	}).Info("team updated")
	return result, nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := repository.NewTeamRepository(s.db).GetWithMembers(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}
	return toTeamResponse(team), nil
}

// List retrieves teams with pagination
func (s *TeamService) List(page, pageSize int) (*TeamListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPagination
	}

	teams, total, err := repository.NewTeamRepository(s.db).GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *toTeamResponse(&teams[i]))
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete destroys a team. Only the captain may do this and only while the
// edit window is open. Members are released and the freed confirmed slot is
// handed to the earliest queued team.
func (s *TeamService) Delete(actorID uuid.UUID, teamID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := repository.NewTeamRepository(tx)
		userRepo := repository.NewUserRepository(tx)

		team, err := teamRepo.GetWithMembers(teamID)
		if err != nil {
			return apperrors.ErrTeamNotFound
		}
		if err := requireCaptain(userRepo, actorID, team.ID); err != nil {
			return err
		}
		if err := checkTeamEditable(tx); err != nil {
			return err
		}

		for _, member := range team.Members {
			if err := userRepo.RemoveFromTeam(member.ID); err != nil {
				return err
			}
		}

		wasConfirmed := team.Confirmed
		if err := teamRepo.Delete(team.ID); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		if wasConfirmed {
			return promoteNextQueued(tx)
		}
		return nil
	}, slotTxOptions)
}

// ChangeCaptain moves the captain flag from the acting captain to another
// member of the same team. The operation stays available after the edit
// window closes: it reassigns a flag between existing members and changes no
// membership.
func (s *TeamService) ChangeCaptain(actorID uuid.UUID, teamID uuid.UUID, newCaptainID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := repository.NewTeamRepository(tx)
		userRepo := repository.NewUserRepository(tx)

		team, err := teamRepo.GetByID(teamID)
		if err != nil {
			return apperrors.ErrTeamNotFound
		}
		if err := requireCaptain(userRepo, actorID, team.ID); err != nil {
			return err
		}

		newCaptain, err := userRepo.GetByID(newCaptainID)
		if err != nil {
			return apperrors.ErrUserNotFound
		}
		if newCaptain.TeamID == nil || *newCaptain.TeamID != team.ID {
			return apperrors.ErrCaptainNotInTeam
		}

		actor, err := userRepo.GetByID(actorID)
		if err != nil {
			return apperrors.ErrUserNotFound
		}

		actor.IsCaptain = false
		newCaptain.IsCaptain = true
		if err := userRepo.Update(actor); err != nil {
			return err
		}
		return userRepo.Update(newCaptain)
	})
}

// RemoveMember takes a user out of their team (the leave_team action).
// Only the user themself (or staff) may do it, and only while the edit
// window is open. A confirmed team dropping below the minimum is demoted and
// the earliest queued team takes its slot in the same transaction.
func (s *TeamService) RemoveMember(actorID uuid.UUID, userID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := repository.NewTeamRepository(tx)
		userRepo := repository.NewUserRepository(tx)
		settingRepo := repository.NewSettingRepository(tx)

		actor, err := userRepo.GetByID(actorID)
		if err != nil {
			return apperrors.ErrUserNotFound
		}
		if actor.ID != userID && !actor.IsStaff {
			return apperrors.ErrNotResourceOwner
		}
		if err := checkTeamEditable(tx); err != nil {
			if apperrors.IsValidation(err) {
				return apperrors.ErrEditWindowClosed
			}
			return err
		}

		user, err := userRepo.GetByID(userID)
		if err != nil {
			return apperrors.ErrUserNotFound
		}
		if user.TeamID == nil {
			return apperrors.ErrUserNotInTeam
		}

		team, err := teamRepo.GetWithMembers(*user.TeamID)
		if err != nil {
			return apperrors.ErrTeamNotFound
		}
		if err := userRepo.RemoveFromTeam(user.ID); err != nil {
			return err
		}

		minUsers, _, _, err := teamBounds(settingRepo)
		if err != nil {
			return err
		}

		remaining := len(team.Members) - 1
		if team.Confirmed && remaining < minUsers {
			team.IsFull = false
			team.Confirmed = false
			if err := teamRepo.Update(team); err != nil {
				return err
			}
			return promoteNextQueued(tx)
		}
		return nil
	}, slotTxOptions)
}

// applySlotRules runs the confirmation state machine for a team after a
// write. memberCount is the roster size after the change; wasConfirmed is
// the confirmed flag before it.
func (s *TeamService) applySlotRules(tx *gorm.DB, team *models.Team, memberCount, minUsers, maxTeams int, wasConfirmed bool) error {
	teamRepo := repository.NewTeamRepository(tx)
	confirmable := memberCount >= minUsers

	if !confirmable {
		team.IsFull = false
		team.Confirmed = false
		team.Ready = nil
		if err := teamRepo.Update(team); err != nil {
			return err
		}
		if wasConfirmed {
			return promoteNextQueued(tx)
		}
		return nil
	}

	if !team.Confirmed {
		confirmed, err := teamRepo.CountConfirmed()
		if err != nil {
			return err
		}
		if confirmed >= int64(maxTeams) {
			if team.Ready == nil {
				now := time.Now()
				team.Ready = &now
			}
		} else {
			team.Confirmed = true
			team.Ready = nil
		}
	}

	// A team that holds no confirmed slot cannot declare itself full.
	if !team.Confirmed {
		team.IsFull = false
	}
	return teamRepo.Update(team)
}

// promoteNextQueued hands the freed confirmed slot to the earliest queued
// team. Runs inside the caller's transaction.
func promoteNextQueued(tx *gorm.DB) error {
	teamRepo := repository.NewTeamRepository(tx)
	next, err := teamRepo.NextQueued(time.Now())
	if err != nil {
		return err
	}
	if next == nil {
		return nil
	}
	next.Ready = nil
	next.Confirmed = true
	return teamRepo.Update(next)
}

// requireCaptain checks that the actor captains the given team
func requireCaptain(userRepo repository.UserRepositoryInterface, actorID uuid.UUID, teamID uuid.UUID) error {
	actor, err := userRepo.GetByID(actorID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}
	if !actor.IsCaptain || actor.TeamID == nil || *actor.TeamID != teamID {
		return apperrors.ErrNotTeamCaptain
	}
	return nil
}

// checkTeamEditable rejects structural team edits after the team_editable
// deadline. A missing deadline record means the window is open.
func checkTeamEditable(tx *gorm.DB) error {
	deadline, err := repository.NewEditDeadlineRepository(tx).GetByField(models.EditDeadlineTeamEditable)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	if deadline.Passed(time.Now()) {
		return apperrors.TeamNotEditableError(deadline.Date.Format("2006-01-02"))
	}
	return nil
}

// teamBounds reads the three team-size settings in one place
func teamBounds(settingRepo repository.SettingRepositoryInterface) (minUsers, maxUsers, maxTeams int, err error) {
	if minUsers, err = settingRepo.GetValue(models.SettingMinUsersInTeam); err != nil {
		return
	}
	if maxUsers, err = settingRepo.GetValue(models.SettingMaxUsersInTeam); err != nil {
		return
	}
	maxTeams, err = settingRepo.GetValue(models.SettingMaxTeams)
	return
}

func resolveTechnologies(tx *gorm.DB, names []string) ([]models.Technology, error) {
	if len(names) == 0 {
		return nil, nil
	}
	technologies, err := repository.NewTechnologyRepository(tx).GetByNames(names)
	if err != nil {
		return nil, err
	}
	if len(technologies) != len(names) {
		return nil, apperrors.ErrTechnologyNotFound
	}
	return technologies, nil
}

func writeAudit(tx *gorm.DB, actorID uuid.UUID, action string, payload interface{}) error {
	body, err := json.Marshal(map[string]interface{}{"action": action, "payload": payload})
	if err != nil {
		return err
	}
	return repository.NewAuditLogRepository(tx).Create(&models.AuditLog{
		UserID: actorID,
		Action: body,
	})
}

func parseGithubLink(link string) (owner, repo string, ok bool) {
	match := githubLinkPattern.FindStringSubmatch(link)
	if match == nil {
		return "", "", false
	}
	return match[1], match[2], true
}

func hasDuplicateIDs(ids []uuid.UUID) bool {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func sameIDSet(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			return false
		}
	}
	return true
}

// diffIDs returns the IDs present in a but not in b
func diffIDs(a, b []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(b))
	for _, id := range b {
		seen[id] = struct{}{}
	}
	var out []uuid.UUID
	for _, id := range a {
		if _, ok := seen[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

func toTeamResponse(team *models.Team) *TeamResponse {
	members := make([]TeamMemberResponse, 0, len(team.Members))
	for _, member := range team.Members {
		members = append(members, TeamMemberResponse{
			ID:        member.ID,
			FirstName: member.FirstName,
			LastName:  member.LastName,
			Email:     member.Email,
			Form:      member.Form,
			DiscordID: member.DiscordID,
			IsCaptain: member.IsCaptain,
		})
	}

	technologies := make([]string, 0, len(team.Technologies))
	for _, technology := range team.Technologies {
		technologies = append(technologies, technology.Name)
	}

	return &TeamResponse{
		ID:                 team.ID,
		Name:               team.Name,
		GithubLink:         team.GithubLink,
		ProjectName:        team.ProjectName,
		ProjectDescription: team.ProjectDescription,
		IsFull:             team.IsFull,
		Confirmed:          team.Confirmed,
		Ready:              team.Ready,
		Members:            members,
		Technologies:       technologies,
		CreatedAt:          team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          team.UpdatedAt.Format(time.RFC3339),
	}
}
