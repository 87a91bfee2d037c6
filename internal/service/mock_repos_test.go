package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jashmevada/skill-swap-platform/internal/model"
	"github.com/jashmevada/skill-swap-platform/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copy := *u
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context, isActive *bool, offset, limit int) ([]model.User, int64, error) {
	var all []model.User
	for _, u := range m.users {
		if isActive != nil && u.IsActive != *isActive {
			continue
		}
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UserID < all[j].UserID })
	total := int64(len(all))
	return paginate(all, offset, limit), total, nil
}

func (m *mockUserRepo) Search(_ context.Context, filters *repository.UserSearchFilters, offset, limit int) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if !u.IsPublic || !u.IsActive || u.UserID == filters.ExcludeID {
			continue
		}
		if filters.Location != "" && !strings.Contains(strings.ToLower(u.Location), strings.ToLower(filters.Location)) {
			continue
		}
		if filters.Skill != "" || filters.Category != "" {
			matched := false
			for _, s := range u.SkillsOffered {
				skillOK := filters.Skill == "" || strings.Contains(strings.ToLower(s.Name), strings.ToLower(filters.Skill))
				catOK := filters.Category == "" || strings.Contains(strings.ToLower(s.Category), strings.ToLower(filters.Category))
				if skillOK && catOK {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UserID < result[j].UserID })
	return paginate(result, offset, limit), nil
}

func (m *mockUserRepo) AddSkillOffered(_ context.Context, userID string, skill *model.Skill) error {
	u, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for _, s := range u.SkillsOffered {
		if s.SkillID == skill.SkillID {
			return nil
		}
	}
	u.SkillsOffered = append(u.SkillsOffered, *skill)
	return nil
}

func (m *mockUserRepo) RemoveSkillOffered(_ context.Context, userID string, skill *model.Skill) error {
	u, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i, s := range u.SkillsOffered {
		if s.SkillID == skill.SkillID {
			u.SkillsOffered = append(u.SkillsOffered[:i], u.SkillsOffered[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockUserRepo) AddSkillWanted(_ context.Context, userID string, skill *model.Skill) error {
	u, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for _, s := range u.SkillsWanted {
		if s.SkillID == skill.SkillID {
			return nil
		}
	}
	u.SkillsWanted = append(u.SkillsWanted, *skill)
	return nil
}

func (m *mockUserRepo) RemoveSkillWanted(_ context.Context, userID string, skill *model.Skill) error {
	u, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i, s := range u.SkillsWanted {
		if s.SkillID == skill.SkillID {
			u.SkillsWanted = append(u.SkillsWanted[:i], u.SkillsWanted[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockUserRepo) Count(_ context.Context) (total, active int64, err error) {
	for _, u := range m.users {
		total++
		if u.IsActive {
			active++
		}
	}
	return total, active, nil
}

func (m *mockUserRepo) ActivityReport(_ context.Context) ([]repository.UserActivityRow, error) {
	var rows []repository.UserActivityRow
	for _, u := range m.users {
		rows = append(rows, repository.UserActivityRow{
			UserID:   u.UserID,
			Username: u.Username,
			Email:    u.Email,
			IsActive: u.IsActive,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].UserID < rows[j].UserID })
	return rows, nil
}

// ── Mock SkillRepository ──

type mockSkillRepo struct {
	skills map[string]*model.Skill
	seq    int
}

func newMockSkillRepo() *mockSkillRepo {
	return &mockSkillRepo{skills: make(map[string]*model.Skill)}
}

func (m *mockSkillRepo) Create(_ context.Context, skill *model.Skill) error {
	if skill.SkillID == "" {
		m.seq++
		skill.SkillID = fmt.Sprintf("skill-%03d", m.seq)
	}
	m.skills[skill.SkillID] = skill
	return nil
}

func (m *mockSkillRepo) GetByID(_ context.Context, id string) (*model.Skill, error) {
	if s, ok := m.skills[id]; ok {
		copy := *s
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSkillRepo) GetByName(_ context.Context, name string) (*model.Skill, error) {
	for _, s := range m.skills {
		if strings.EqualFold(s.Name, name) {
			copy := *s
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSkillRepo) List(_ context.Context, filters *repository.SkillListFilters, offset, limit int) ([]model.Skill, int64, error) {
	var all []model.Skill
	for _, s := range m.skills {
		if filters.ApprovedOnly && !s.IsApproved {
			continue
		}
		if filters.Category != "" && !strings.Contains(strings.ToLower(s.Category), strings.ToLower(filters.Category)) {
			continue
		}
		if filters.Search != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(filters.Search)) {
			continue
		}
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	return paginate(all, offset, limit), total, nil
}

func (m *mockSkillRepo) ListPending(_ context.Context) ([]model.Skill, error) {
	var pending []model.Skill
	for _, s := range m.skills {
		if !s.IsApproved {
			pending = append(pending, *s)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].SkillID < pending[j].SkillID })
	return pending, nil
}

func (m *mockSkillRepo) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, s := range m.skills {
		if s.Category != "" && s.IsApproved && !seen[s.Category] {
			seen[s.Category] = true
			categories = append(categories, s.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (m *mockSkillRepo) Update(_ context.Context, skill *model.Skill) error {
	if _, ok := m.skills[skill.SkillID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.skills[skill.SkillID] = skill
	return nil
}

func (m *mockSkillRepo) Delete(_ context.Context, id string) error {
	delete(m.skills, id)
	return nil
}

func (m *mockSkillRepo) Count(_ context.Context) (total, approved int64, err error) {
	for _, s := range m.skills {
		total++
		if s.IsApproved {
			approved++
		}
	}
	return total, approved, nil
}

// ── Mock SwapRepository ──

type mockSwapRepo struct {
	swaps map[string]*model.SwapRequest
	seq   int

	// beforeUpdateStatus runs at the top of UpdateStatus; tests use it to
	// interleave a competing write before the compare-and-swap.
	beforeUpdateStatus func()

	// failNextCAS makes the next UpdateStatus miss without touching the
	// record, like a competing write that was rolled back.
	failNextCAS bool
}

func newMockSwapRepo() *mockSwapRepo {
	return &mockSwapRepo{swaps: make(map[string]*model.SwapRequest)}
}

func (m *mockSwapRepo) Create(_ context.Context, req *model.SwapRequest) error {
	if req.SwapRequestID == "" {
		m.seq++
		req.SwapRequestID = fmt.Sprintf("swap-%03d", m.seq)
	}
	copy := *req
	m.swaps[req.SwapRequestID] = &copy
	return nil
}

func (m *mockSwapRepo) GetByID(_ context.Context, id string) (*model.SwapRequest, error) {
	if r, ok := m.swaps[id]; ok {
		copy := *r
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSwapRepo) List(_ context.Context, filters *repository.SwapListFilters, offset, limit int) ([]model.SwapRequest, int64, error) {
	var all []model.SwapRequest
	for _, r := range m.swaps {
		if filters.UserID != "" {
			switch filters.Role {
			case repository.SwapRoleSent:
				if r.RequesterID != filters.UserID {
					continue
				}
			case repository.SwapRoleReceived:
				if r.RequestedID != filters.UserID {
					continue
				}
			default:
				if r.RequesterID != filters.UserID && r.RequestedID != filters.UserID {
					continue
				}
			}
		}
		if filters.Status != "" && r.Status != filters.Status {
			continue
		}
		all = append(all, *r)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].SwapRequestID > all[j].SwapRequestID
	})
	total := int64(len(all))
	return paginate(all, offset, limit), total, nil
}

func (m *mockSwapRepo) UpdateStatus(_ context.Context, id string, from, to model.SwapStatus, now time.Time) (int64, error) {
	if m.beforeUpdateStatus != nil {
		hook := m.beforeUpdateStatus
		m.beforeUpdateStatus = nil
		hook()
	}
	if m.failNextCAS {
		m.failNextCAS = false
		return 0, nil
	}
	r, ok := m.swaps[id]
	if !ok || r.Status != from {
		return 0, nil
	}
	r.Status = to
	r.UpdatedAt = now
	return 1, nil
}

func (m *mockSwapRepo) Delete(_ context.Context, id string) error {
	delete(m.swaps, id)
	return nil
}

func (m *mockSwapRepo) ExistsPendingDuplicate(_ context.Context, requesterID, requestedID, skillOfferedID, skillWantedID string) (bool, error) {
	for _, r := range m.swaps {
		if r.RequesterID == requesterID && r.RequestedID == requestedID &&
			r.SkillOfferedID == skillOfferedID && r.SkillWantedID == skillWantedID &&
			r.Status == model.SwapStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSwapRepo) Count(_ context.Context) (total, pending, completed int64, err error) {
	for _, r := range m.swaps {
		total++
		switch r.Status {
		case model.SwapStatusPending:
			pending++
		case model.SwapStatusCompleted:
			completed++
		}
	}
	return total, pending, completed, nil
}

// ── Mock FeedbackRepository ──

type mockFeedbackRepo struct {
	feedback map[string]*model.Feedback
	seq      int
}

func newMockFeedbackRepo() *mockFeedbackRepo {
	return &mockFeedbackRepo{feedback: make(map[string]*model.Feedback)}
}

func (m *mockFeedbackRepo) Create(_ context.Context, fb *model.Feedback) error {
	if fb.FeedbackID == "" {
		m.seq++
		fb.FeedbackID = fmt.Sprintf("fb-%03d", m.seq)
	}
	m.feedback[fb.FeedbackID] = fb
	return nil
}

func (m *mockFeedbackRepo) GetBySwapAndGiver(_ context.Context, swapRequestID, giverID string) (*model.Feedback, error) {
	for _, fb := range m.feedback {
		if fb.SwapRequestID == swapRequestID && fb.GiverID == giverID {
			copy := *fb
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFeedbackRepo) ListByReceiver(_ context.Context, receiverID string, offset, limit int) ([]model.Feedback, int64, error) {
	var all []model.Feedback
	for _, fb := range m.feedback {
		if fb.ReceiverID == receiverID {
			all = append(all, *fb)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	return paginate(all, offset, limit), total, nil
}

func (m *mockFeedbackRepo) Stats(_ context.Context) (*repository.FeedbackStats, error) {
	stats := &repository.FeedbackStats{}
	sum := 0
	for _, fb := range m.feedback {
		stats.Total++
		sum += fb.Rating
		if stats.MinRating == 0 || fb.Rating < stats.MinRating {
			stats.MinRating = fb.Rating
		}
		if fb.Rating > stats.MaxRating {
			stats.MaxRating = fb.Rating
		}
	}
	if stats.Total > 0 {
		stats.AverageRating = float64(sum) / float64(stats.Total)
	}
	return stats, nil
}

// ── Mock AdminMessageRepository ──

type mockAdminMessageRepo struct {
	messages map[string]*model.AdminMessage
	seq      int
}

func newMockAdminMessageRepo() *mockAdminMessageRepo {
	return &mockAdminMessageRepo{messages: make(map[string]*model.AdminMessage)}
}

func (m *mockAdminMessageRepo) Create(_ context.Context, msg *model.AdminMessage) error {
	if msg.MessageID == "" {
		m.seq++
		msg.MessageID = fmt.Sprintf("msg-%03d", m.seq)
	}
	m.messages[msg.MessageID] = msg
	return nil
}

func (m *mockAdminMessageRepo) GetByID(_ context.Context, id string) (*model.AdminMessage, error) {
	if msg, ok := m.messages[id]; ok {
		copy := *msg
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminMessageRepo) List(_ context.Context, isActive *bool) ([]model.AdminMessage, error) {
	var all []model.AdminMessage
	for _, msg := range m.messages {
		if isActive != nil && msg.IsActive != *isActive {
			continue
		}
		all = append(all, *msg)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].MessageID < all[j].MessageID })
	return all, nil
}

func (m *mockAdminMessageRepo) Update(_ context.Context, msg *model.AdminMessage) error {
	if _, ok := m.messages[msg.MessageID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.messages[msg.MessageID] = msg
	return nil
}

// ── helpers ──

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func newMockRepository() (*repository.Repository, *mockUserRepo, *mockSkillRepo, *mockSwapRepo, *mockFeedbackRepo, *mockAdminMessageRepo) {
	userRepo := newMockUserRepo()
	skillRepo := newMockSkillRepo()
	swapRepo := newMockSwapRepo()
	feedbackRepo := newMockFeedbackRepo()
	messageRepo := newMockAdminMessageRepo()

	repo := &repository.Repository{
		User:         userRepo,
		Skill:        skillRepo,
		Swap:         swapRepo,
		Feedback:     feedbackRepo,
		AdminMessage: messageRepo,
	}
	return repo, userRepo, skillRepo, swapRepo, feedbackRepo, messageRepo
}
