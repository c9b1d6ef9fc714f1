package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "fitflow_backend/internals/features/attendance/model"
	gate "fitflow_backend/internals/features/attendance/service"
	"fitflow_backend/internals/features/dashboard/dto"
	analytics "fitflow_backend/internals/features/dashboard/service"
	memberModel "fitflow_backend/internals/features/members/model"
	paymentModel "fitflow_backend/internals/features/payments/model"
	helper "fitflow_backend/internals/helpers"
)

/*
	========================================================
	  Controller

========================================================
*/
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/dashboard/stats — agregasi read-only, tanpa mutasi apapun
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	now := time.Now()
	startOfMonth := analytics.StartOfMonth(now)
	startOfDay, endOfDay := gate.DayWindow(now)

	// 1) Revenue bulan berjalan
	var revenue int
	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Where("payment_date >= ?", startOfMonth).
		Select("COALESCE(SUM(payment_amount), 0)").
		Scan(&revenue).Error; err != nil {
		log.Println("[ERROR] Revenue aggregation failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	// 2) Jumlah member per status
	var totalActive, totalExpired int64
	if err := ctrl.DB.Model(&memberModel.MemberModel{}).
		Where("member_status = ?", memberModel.MemberStatusActive).
		Count(&totalActive).Error; err != nil {
		log.Println("[ERROR] Active count failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}
	// Catatan: Expired di sini undercount karena transisi expired hanya
	// terjadi lazy saat check-in. Behavior lama dipertahankan.
	if err := ctrl.DB.Model(&memberModel.MemberModel{}).
		Where("member_status = ?", memberModel.MemberStatusExpired).
		Count(&totalExpired).Error; err != nil {
		log.Println("[ERROR] Expired count failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	// 3) Check-in hari ini
	var todayCheckIns int64
	if err := ctrl.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_date BETWEEN ? AND ?", startOfDay, endOfDay).
		Count(&todayCheckIns).Error; err != nil {
		log.Println("[ERROR] Today check-in count failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	// 4) Expiring ≤ 7 hari (inklusif)
	next7Days := now.AddDate(0, 0, 7)
	var expiringSoon []dto.ExpiringMember
	if err := ctrl.DB.Model(&memberModel.MemberModel{}).
		Select("member_id", "member_name", "member_phone", "member_expiry_date").
		Where("member_status = ? AND member_expiry_date BETWEEN ? AND ?",
			memberModel.MemberStatusActive, now, next7Days).
		Order("member_expiry_date ASC").
		Scan(&expiringSoon).Error; err != nil {
		log.Println("[ERROR] Expiring soon query failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}
	if expiringSoon == nil {
		expiringSoon = []dto.ExpiringMember{}
	}

	return helper.JsonOK(c, "ok", dto.StatsResponse{
		Revenue:        revenue,
		ActiveMembers:  totalActive,
		ExpiredMembers: totalExpired,
		TodayCheckIns:  todayCheckIns,
		ExpiringSoon:   expiringSoon,
	})
}

// GET /api/dashboard/revenue-analytics — 6 bulan terakhir, grouping (bulan, tahun)
func (ctrl *DashboardController) GetRevenueAnalytics(c *fiber.Ctx) error {
	sixMonthsAgo := time.Now().AddDate(0, -6, 0)

	var payments []paymentModel.PaymentModel
	if err := ctrl.DB.
		Where("payment_date >= ?", sixMonthsAgo).
		Order("payment_date ASC").
		Find(&payments).Error; err != nil {
		log.Println("[ERROR] Revenue analytics query failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	return helper.JsonOK(c, "ok", analytics.GroupMonthly(payments))
}
