package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitflow_backend/internals/features/attendance/dto"
	"fitflow_backend/internals/features/attendance/model"
	gate "fitflow_backend/internals/features/attendance/service"
	memberModel "fitflow_backend/internals/features/members/model"
	helper "fitflow_backend/internals/helpers"
)

/*
	========================================================
	  Controller

========================================================
*/
type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// POST /api/attendance/checkin
// Gate masuk gym. Respons denial sengaja informatif (nama + status)
// supaya staf front-desk langsung tahu harus ngomong apa.
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	var body dto.CheckInRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// 1) Resolve member: by id ATAU by phone
	member, err := ctrl.findMember(body)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Member not found",
			})
		}
		log.Println("[ERROR] Member lookup failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	now := time.Now()

	// 2) Cek duplikat hari ini (hanya relevan kalau lolos status+expiry,
	//    tapi murah untuk dihitung sekali di depan)
	startOfDay, endOfDay := gate.DayWindow(now)
	var existing model.AttendanceModel
	alreadyToday := false
	err = ctrl.DB.
		Where("attendance_member_id = ? AND attendance_date BETWEEN ? AND ?",
			member.MemberID, startOfDay, endOfDay).
		First(&existing).Error
	if err == nil {
		alreadyToday = true
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] Attendance lookup failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	// 3) Jalankan tabel keputusan
	switch gate.Evaluate(member, now, alreadyToday) {

	case gate.DecisionDenyNotActive:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("Check-in Denied: Member is %s", member.MemberStatus),
			"member": fiber.Map{
				"name":   member.MemberName,
				"status": member.MemberStatus,
			},
		})

	case gate.DecisionDenyExpired:
		// Koreksi lazy: status Active basi → Expired, dipersist sebelum deny
		if err := ctrl.DB.Model(&memberModel.MemberModel{}).
			Where("member_id = ?", member.MemberID).
			Update("member_status", memberModel.MemberStatusExpired).Error; err != nil {
			log.Println("[ERROR] Lazy expiry update failed:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Check-in Denied: Membership Expired",
			"member": fiber.Map{
				"name":        member.MemberName,
				"status":      memberModel.MemberStatusExpired,
				"expiry_date": member.MemberExpiryDate,
			},
		})

	case gate.DecisionAlreadyToday:
		// Idempotent: scan ulang di hari yang sama tetap sukses, tanpa baris baru
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Already checked in today",
			"member": fiber.Map{
				"name":          member.MemberName,
				"last_check_in": existing.AttendanceDate,
			},
		})
	}

	// 4) Admit: catat attendance + update last_check_in
	attendance := model.AttendanceModel{
		AttendanceMemberID: member.MemberID,
		AttendanceDate:     now,
		AttendanceStatus:   model.AttendanceStatusPresent,
	}
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attendance).Error; err != nil {
			return err
		}
		return tx.Model(&memberModel.MemberModel{}).
			Where("member_id = ?", member.MemberID).
			Update("member_last_check_in", now).Error
	}); err != nil {
		log.Println("[ERROR] Check-in transaction failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	expiryDays := 0
	if member.MemberExpiryDate != nil {
		expiryDays = gate.ExpiryDays(*member.MemberExpiryDate, now)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "Check-in Successful",
		"attendance": attendance,
		"member": fiber.Map{
			"name":        member.MemberName,
			"status":      member.MemberStatus,
			"expiry_days": expiryDays,
		},
	})
}

func (ctrl *AttendanceController) findMember(body dto.CheckInRequest) (*memberModel.MemberModel, error) {
	var member memberModel.MemberModel
	if id := strings.TrimSpace(body.MemberID); id != "" {
		memberID, err := uuid.Parse(id)
		if err != nil {
			// id tidak valid diperlakukan sama dengan tidak ketemu
			return nil, gorm.ErrRecordNotFound
		}
		if err := ctrl.DB.Where("member_id = ?", memberID).First(&member).Error; err != nil {
			return nil, err
		}
		return &member, nil
	}
	if err := ctrl.DB.Where("member_phone = ?", strings.TrimSpace(body.Phone)).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

/* ===================== History ===================== */

type attendanceWithMember struct {
	model.AttendanceModel
	MemberName string `json:"member_name"`
}

// GET /api/attendance?member_id= — 50 record terakhir
func (ctrl *AttendanceController) GetHistory(c *fiber.Ctx) error {
	q := ctrl.DB.Table("attendance").
		Select("attendance.*, members.member_name").
		Joins("LEFT JOIN members ON members.member_id = attendance.attendance_member_id")

	if memberID := c.Query("member_id"); memberID != "" {
		id, err := uuid.Parse(memberID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
		}
		q = q.Where("attendance.attendance_member_id = ?", id)
	}

	var history []attendanceWithMember
	if err := q.Order("attendance.attendance_date DESC").
		Limit(50).
		Scan(&history).Error; err != nil {
		log.Println("[ERROR] Find attendance failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	return helper.JsonList(c, "ok", history, nil)
}
