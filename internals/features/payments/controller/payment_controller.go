package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	memberModel "fitflow_backend/internals/features/members/model"
	"fitflow_backend/internals/features/payments/dto"
	"fitflow_backend/internals/features/payments/model"
	ledger "fitflow_backend/internals/features/payments/service"
	planModel "fitflow_backend/internals/features/plans/model"
	helper "fitflow_backend/internals/helpers"
)

/*
	========================================================
	  Controller

========================================================
*/
type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// POST /api/payment
// Catat pembayaran + perpanjang expiry member dalam SATU transaksi,
// biar tidak ada payment yatim / update member yang hilang.
func (ctrl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var body dto.CreatePaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(nil); err != nil {
		if body.MemberID == "" || body.Amount <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Member ID and Amount are required")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	memberID, err := uuid.Parse(body.MemberID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var member memberModel.MemberModel
	if err := ctrl.DB.Where("member_id = ?", memberID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		log.Println("[ERROR] Member lookup failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	// Resolve plan (opsional). Plan tidak ketemu bukan error fatal:
	// fallback ke duration_days / 30 dengan snapshot "Custom".
	var plan *planModel.PlanModel
	if body.PlanID != nil && *body.PlanID != "" {
		planID, err := uuid.Parse(*body.PlanID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plan id")
		}
		var p planModel.PlanModel
		if err := ctrl.DB.Where("plan_id = ?", planID).First(&p).Error; err == nil {
			plan = &p
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] Plan lookup failed:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
		}
	}

	now := time.Now()
	duration, planName := ledger.ResolvePlanTerms(plan, body.DurationDays)

	method := model.PaymentMethodCash
	if body.Method != nil && *body.Method != "" {
		method = *body.Method
	}

	payment := model.PaymentModel{
		PaymentMemberID: member.MemberID,
		PaymentAmount:   body.Amount,
		PaymentPlan:     planName,
		PaymentMethod:   method,
		PaymentDate:     now,
	}

	// Expiry WAJIB dihitung dari baris member yang di-lock di dalam
	// transaksi. Kalau dihitung dari snapshot sebelum transaksi, dua
	// pembayaran barengan untuk member yang sama bisa saling timpa
	// (dua-duanya extend dari expiry basi yang sama → satu perpanjangan
	// hilang). SELECT ... FOR UPDATE bikin pembayaran kedua antre dan
	// stack di atas hasil pembayaran pertama.
	var newExpiry time.Time
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var locked memberModel.MemberModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("member_id = ?", member.MemberID).
			First(&locked).Error; err != nil {
			return err
		}
		newExpiry = ledger.ComputeNewExpiry(locked.MemberExpiryDate, now, duration)

		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		// lastCheckIn sengaja tidak disentuh
		return tx.Model(&memberModel.MemberModel{}).
			Where("member_id = ?", member.MemberID).
			Updates(map[string]interface{}{
				"member_status":      memberModel.MemberStatusActive,
				"member_expiry_date": newExpiry,
			}).Error
	}); err != nil {
		log.Println("[ERROR] Payment transaction failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	return helper.JsonCreated(c, "Payment recorded", fiber.Map{
		"payment": payment,
		"member": dto.MemberSummary{
			ID:         member.MemberID,
			Name:       member.MemberName,
			Status:     memberModel.MemberStatusActive,
			ExpiryDate: &newExpiry,
		},
	})
}

/* ===================== History ===================== */

type paymentWithMember struct {
	model.PaymentModel
	MemberName string `json:"member_name"`
}

// GET /api/payment?member_id=
func (ctrl *PaymentController) GetPayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Table("payments").
		Select("payments.*, members.member_name").
		Joins("LEFT JOIN members ON members.member_id = payments.payment_member_id")

	if memberID := c.Query("member_id"); memberID != "" {
		id, err := uuid.Parse(memberID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
		}
		q = q.Where("payments.payment_member_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Count payments failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	var payments []paymentWithMember
	if err := q.Order("payments.payment_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&payments).Error; err != nil {
		log.Println("[ERROR] Find payments failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", payments, &pagination)
}
