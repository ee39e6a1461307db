// Package seed provides the demo documents loaded into the in-memory store.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"doctrack/internal/model"
)

const (
	LetterID   = "6f1c2a9e-3b47-4d8a-9e21-0c5b7f4d8a42"
	ProposalID = "b2e47d10-8c3f-4a61-a5d9-71e0f2c6b115"
)

// Documents returns the demo set in store order.
func Documents() []model.Document {
	kabul := time.FixedZone("AFT", 4*3600+1800)
	at := func(y int, m time.Month, d, h, min int) time.Time {
		return time.Date(y, m, d, h, min, 0, 0, kabul).UTC()
	}
	cost := decimal.NewFromInt(45_000_000)

	return []model.Document{
		{
			ID:           LetterID,
			DocNumber:    "QT-MK-1402-0842",
			Type:         model.DocTypeLetter,
			Branch:       model.BranchAdmin,
			Title:        "استملاک زمین برای بخش ۴",
			Sender:       "وزارت زراعت",
			Receiver:     "مدیریت اداری",
			Date:         "۱۴۰۲/۰۸/۰۲",
			Status:       model.StatusApproved,
			Priority:     model.PriorityUrgent,
			Description:  "درخواست استملاک زمین‌های اطراف کانال در بخش چهارم.",
			ActionsTaken: "مکتوب دریافت و در دفتر ثبت شد.",
			Attachments:  []model.Attachment{},
			History: []model.HistoryEntry{
				{From: "وزارت زراعت", To: "مدیریت اداری", Timestamp: at(2023, time.October, 24, 10, 15), Action: "دریافت مکتوب و ورود به سیستم", Actor: "احمدی - مدیر اداری"},
				{From: "مدیریت اداری", To: "ریاست عمومی", Timestamp: at(2023, time.October, 25, 9, 0), Action: "ارسال جهت بررسی رئیس", Actor: "احمدی - مدیر اداری"},
				{From: "ریاست عمومی", To: "مدیریت اداری", Timestamp: at(2023, time.October, 26, 11, 30), Action: "تایید نهایی و امضا", Actor: "کریمی - رئیس عمومی"},
			},
			CreatedAt: at(2023, time.October, 24, 10, 15),
		},
		{
			ID:           ProposalID,
			DocNumber:    "QT-PN-1402-0115",
			Type:         model.DocTypeProposal,
			Branch:       model.BranchProcurement,
			Title:        "تدارکات ماشین‌آلات سنگین",
			Sender:       "مدیریت لوژستیک",
			Receiver:     "مدیریت تدارکات",
			Date:         "۱۴۰۲/۰۹/۱۵",
			Status:       model.StatusPending,
			Priority:     model.PriorityCritical,
			Description:  "پیشنهاد خریداری ۱۰ عراده بیل مکانیکی جدید.",
			ActionsTaken: "در حال بررسی منابع مالی و مشخصات تخنیکی.",
			Details:      model.ProposalDetails{EstimatedCost: &cost, IsQuoted: true},
			Attachments: []model.Attachment{
				{ID: "att-1", Name: "Proposal_Draft.pdf", MediaType: "application/pdf", Size: 1_258_291, Locator: "documents/" + ProposalID + "/att-1.pdf"},
			},
			History: []model.HistoryEntry{
				{From: "لوژستیک", To: "تدارکات", Timestamp: at(2023, time.December, 6, 0, 0), Action: "ارسال پیشنهاد خرید", Actor: "محمدی - مدیر لوژستیک"},
			},
			CreatedAt: at(2023, time.December, 6, 0, 0),
		},
	}
}
