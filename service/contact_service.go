package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/cydxin/sac-cms/cons"
	"github.com/cydxin/sac-cms/models"
	"github.com/cydxin/sac-cms/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContactService 联系人目录：对外只读，后台 superadmin 维护。
type ContactService struct {
	*Service
	contactDao *repository.ContactDAO
}

func NewContactService(s *Service) *ContactService {
	return &ContactService{
		Service:    s,
		contactDao: repository.NewContactDAO(s.DB),
	}
}

// --- types ---

type SocialLinks struct {
	Linkedin  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type ContactDTO struct {
	ID           uint64               `json:"id"`
	Name         string               `json:"name"`
	Position     string               `json:"position"`
	Category     cons.ContactCategory `json:"category"`
	Club         string               `json:"club,omitempty"`
	Department   string               `json:"department,omitempty"`
	Email        string               `json:"email"`
	Phone        string               `json:"phone"`
	Image        string               `json:"image"`
	DisplayOrder int                  `json:"displayOrder"`
	SocialLinks  *SocialLinks         `json:"socialLinks,omitempty"`
	IsActive     bool                 `json:"isActive"`
}

type CreateContactReq struct {
	Name         string               `json:"name"`
	Position     string               `json:"position"`
	Category     cons.ContactCategory `json:"category"`
	Club         string               `json:"club"`
	Department   string               `json:"department"`
	Email        string               `json:"email"`
	Phone        string               `json:"phone"`
	Image        string               `json:"image"` // 不传默认 /avatar.png
	DisplayOrder int                  `json:"displayOrder"`
	SocialLinks  *SocialLinks         `json:"socialLinks"`
	IsActive     *bool                `json:"isActive"` // 不传默认 true
}

// ApplyDefaults 显式补默认值，必须在校验之前调用。
func (req *CreateContactReq) ApplyDefaults() {
	if strings.TrimSpace(req.Image) == "" {
		req.Image = "/avatar.png"
	}
	if req.IsActive == nil {
		active := true
		req.IsActive = &active
	}
}

type UpdateContactReq struct {
	Name         *string               `json:"name"`
	Position     *string               `json:"position"`
	Category     *cons.ContactCategory `json:"category"`
	Club         *string               `json:"club"`
	Department   *string               `json:"department"`
	Email        *string               `json:"email"`
	Phone        *string               `json:"phone"`
	Image        *string               `json:"image"`
	DisplayOrder *int                  `json:"displayOrder"`
	SocialLinks  *SocialLinks          `json:"socialLinks"`
	IsActive     *bool                 `json:"isActive"`
}

// ValidateNewContact 创建校验。club/department 的必填与否取决于分类：
// club_secretary 必须带 club，faculty 必须带 department。
func ValidateNewContact(req CreateContactReq) error {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Position) == "" {
		missing = append(missing, "position")
	}
	if req.Category == "" {
		missing = append(missing, "category")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return newMissingFieldsError(missing)
	}

	if !req.Category.Valid() {
		return newFieldError("category", "Invalid category")
	}
	if req.Category == cons.ContactCategoryClubSecretary && strings.TrimSpace(req.Club) == "" {
		return newFieldError("club", "Club is required for club secretaries")
	}
	if req.Category == cons.ContactCategoryFaculty && strings.TrimSpace(req.Department) == "" {
		return newFieldError("department", "Department is required for faculty")
	}
	return nil
}

func toContactDTO(c *models.Contact) (*ContactDTO, error) {
	if c == nil {
		return nil, nil
	}
	dto := &ContactDTO{
		ID:           c.ID,
		Name:         c.Name,
		Position:     c.Position,
		Category:     c.Category,
		Club:         c.Club,
		Department:   c.Department,
		Email:        c.Email,
		Phone:        c.Phone,
		Image:        c.Image,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
	}
	if len(c.SocialLinks) > 0 {
		var links SocialLinks
		if err := json.Unmarshal(c.SocialLinks, &links); err != nil {
			return nil, err
		}
		dto.SocialLinks = &links
	}
	return dto, nil
}

// --- operations ---

// Create 新增联系人。email 唯一，冲突按字段错误返回。
func (s *ContactService) Create(actor Actor, req CreateContactReq) (*ContactDTO, error) {
	if !actor.IsSuperadmin() {
		return nil, ErrPermissionDenied
	}

	req.ApplyDefaults()
	if err := ValidateNewContact(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.contactDao.ExistsByEmail(email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, newFieldError("email", "A contact with this email already exists")
	}

	var links datatypes.JSON
	if req.SocialLinks != nil {
		b, err := json.Marshal(req.SocialLinks)
		if err != nil {
			return nil, err
		}
		links = datatypes.JSON(b)
	}

	c := &models.Contact{
		Name:         req.Name,
		Position:     req.Position,
		Category:     req.Category,
		Club:         req.Club,
		Department:   req.Department,
		Email:        email,
		Phone:        req.Phone,
		Image:        req.Image,
		DisplayOrder: req.DisplayOrder,
		SocialLinks:  links,
		IsActive:     *req.IsActive,
	}
	if err := s.contactDao.Create(c); err != nil {
		return nil, err
	}
	return toContactDTO(c)
}

// ListActive 公开目录。
func (s *ContactService) ListActive(category cons.ContactCategory) ([]ContactDTO, error) {
	if category != "" && !category.Valid() {
		// 未知分类当作无结果处理，不报错
		return []ContactDTO{}, nil
	}
	rows, err := s.contactDao.ListActive(category)
	if err != nil {
		return nil, err
	}
	return toContactDTOs(rows)
}

// ListAll 后台列表（含已停用）。
func (s *ContactService) ListAll(actor Actor) ([]ContactDTO, error) {
	if !actor.IsSuperadmin() {
		return nil, ErrPermissionDenied
	}
	rows, err := s.contactDao.ListAll()
	if err != nil {
		return nil, err
	}
	return toContactDTOs(rows)
}

func toContactDTOs(rows []models.Contact) ([]ContactDTO, error) {
	out := make([]ContactDTO, 0, len(rows))
	for i := range rows {
		dto, err := toContactDTO(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

// Update 部分更新。改 email 时重新查重（排除自身）。
func (s *ContactService) Update(actor Actor, id uint64, req UpdateContactReq) (*ContactDTO, error) {
	if !actor.IsSuperadmin() {
		return nil, ErrPermissionDenied
	}

	exists, err := s.contactDao.ExistsByID(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	if req.Category != nil && !req.Category.Valid() {
		return nil, newFieldError("category", "Invalid category")
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Club != nil {
		fields["club"] = *req.Club
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		dup, err := s.contactDao.ExistsByEmail(email, id)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, newFieldError("email", "A contact with this email already exists")
		}
		fields["email"] = email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}
	if req.SocialLinks != nil {
		b, err := json.Marshal(req.SocialLinks)
		if err != nil {
			return nil, err
		}
		fields["social_links"] = datatypes.JSON(b)
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if err := s.contactDao.Update(id, fields); err != nil {
		return nil, err
	}

	updated, err := s.contactDao.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toContactDTO(updated)
}

// Delete 硬删除。
func (s *ContactService) Delete(actor Actor, id uint64) error {
	if !actor.IsSuperadmin() {
		return ErrPermissionDenied
	}

	exists, err := s.contactDao.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return s.contactDao.Delete(id)
}
