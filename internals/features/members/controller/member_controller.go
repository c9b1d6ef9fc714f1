package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitflow_backend/internals/features/members/dto"
	"fitflow_backend/internals/features/members/model"
	helper "fitflow_backend/internals/helpers"
)

/*
	========================================================
	  Controller

========================================================
*/
type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

// GET /api/members?search=
func (ctrl *MemberController) GetMembers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.MemberModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("member_name ILIKE ? OR member_phone ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Count members failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	var members []model.MemberModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&members).Error; err != nil {
		log.Println("[ERROR] Find members failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", members, &pagination)
}

// POST /api/members — member baru selalu Inactive sampai ada pembayaran
func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	var body dto.CreateMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(nil); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name and Phone required")
	}

	phone := strings.TrimSpace(body.MemberPhone)

	// Telepon unik: cek dulu biar pesannya enak dibaca front-desk
	var existing model.MemberModel
	err := ctrl.DB.Where("member_phone = ?", phone).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Member with this phone already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] Phone lookup failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	member := model.MemberModel{
		MemberName:   strings.TrimSpace(body.MemberName),
		MemberPhone:  phone,
		MemberNotes:  body.MemberNotes,
		MemberStatus: model.MemberStatusInactive,
		// member_expiry_date tetap null sampai pembayaran pertama
	}
	if err := ctrl.DB.Create(&member).Error; err != nil {
		log.Println("[ERROR] Create member failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	return helper.JsonCreated(c, "Member created", member)
}

// GET /api/members/:id
func (ctrl *MemberController) GetMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var member model.MemberModel
	if err := ctrl.DB.Where("member_id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		log.Println("[ERROR] Get member failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	return helper.JsonOK(c, "ok", member)
}

// PUT /api/members/:id — partial update (status/expiry bisa diset manual oleh staff)
func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var body dto.UpdateMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(nil); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var member model.MemberModel
	if err := ctrl.DB.Where("member_id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		log.Println("[ERROR] Get member failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	if body.MemberName != nil && strings.TrimSpace(*body.MemberName) != "" {
		member.MemberName = strings.TrimSpace(*body.MemberName)
	}
	if body.MemberPhone != nil && strings.TrimSpace(*body.MemberPhone) != "" {
		member.MemberPhone = strings.TrimSpace(*body.MemberPhone)
	}
	if body.MemberNotes != nil {
		member.MemberNotes = body.MemberNotes
	}
	if body.MemberStatus != nil {
		member.MemberStatus = *body.MemberStatus
	}
	if body.MemberExpiryDate != nil {
		member.MemberExpiryDate = body.MemberExpiryDate
	}

	if err := ctrl.DB.Save(&member).Error; err != nil {
		log.Println("[ERROR] Update member failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	return helper.JsonUpdated(c, "Member updated", member)
}

// DELETE /api/members/:id — payment & attendance sengaja tidak ikut terhapus (fakta historis)
func (ctrl *MemberController) DeleteMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var member model.MemberModel
	if err := ctrl.DB.Where("member_id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		log.Println("[ERROR] Get member failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	if err := ctrl.DB.Delete(&member).Error; err != nil {
		log.Println("[ERROR] Delete member failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	return helper.JsonDeleted(c, "Member removed", fiber.Map{"member_id": member.MemberID})
}
