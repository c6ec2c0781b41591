package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/blakejoy/saccom-app/internal/model"
)

// accommodationSeed 预置支持措施清单（首次启动播种）
// 原始清单允许含重复项，播种前按首次出现顺序去重
var accommodationSeed = []string{
	"Spell check or external spell check device",
	"Text-to-Speech (Text Only & Graphics)",
	"Graphic Organizer",
	"Small group",
	"Reduced distractions to self and others",
	"Math tools including Calculator on non calculator sections",
	"Extended time 1.5x",
	"Allow use of organizational aids",
	"Repeat or paraphrase information",
	"Allow use of highlighters",
	"Provide student with a copy of student/teacher notes",
	"Chunking of texts",
	"Computer to use as a spelling aid",
	"Strategies to initiate and sustain attention",
	"Redirect student",
	"Specified area/seating",
	"Frequent breaks",
	"Mathematics tools",
	"Monitor test response",
	"Allow use of manipulatives",
	"Have student repeat and/or paraphrase information",
	"Break down assignments into smaller units",
	"Home-school communication system (weekly)",
	"Encourage student to ask for assistance when needed",
	"Preferential seating",
	"Adult support",
	"Chunking instructions and check in to ensure they are on-task and working",
	"Avoid multiple commands: give specific, clear, concrete instructions individually",
	"Repetition of class material",
	"Organizational aids",
	"Pre-teach new vocabulary",
	"Use pre-reading strategies and review discussions prior to reading",
	"Limit amount to be copied from the board",
	"Repeat/paraphrase information",
	"Frequent repetition of new skills",
	"Text-To-Speech (text Only)",
	"Check-ins with trusted adult",
	"Noise-canceling headphones",
	"Frequent changes in activity or opportunities for movement",
	"Proofreading checklist",
	"Assignments broken into smaller units",
	"Pictures to support reading passages",
	"Social skills training",
	"Process questions",
	"Delete extraneous info",
	"Math tools including Calculator on ALL calculator sections",
	"Picture schedule",
	"Adult support (medical and safety)",
	"Altered/modified assignments",
	"Prompting to support processing and participation in writing",
	"Large text (18-20 point font)",
	"Pictures to support reading",
	"Review health plan",
	"Graphic organizer",
	"Computer to use as spelling aid",
}

// SeedAccommodations 播种预置支持措施（幂等）
// 依赖 name 唯一索引 + ON CONFLICT DO NOTHING，重复执行不产生重复行
func SeedAccommodations(db *gorm.DB, logger *zap.Logger) error {
	seen := make(map[string]bool, len(accommodationSeed))
	rows := make([]model.Accommodation, 0, len(accommodationSeed))
	for _, name := range accommodationSeed {
		if seen[name] {
			continue
		}
		seen[name] = true
		rows = append(rows, model.Accommodation{
			Name:      name,
			SortOrder: len(rows),
			IsActive:  true,
		})
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).CreateInBatches(rows, 100).Error
	if err != nil {
		return fmt.Errorf("播种支持措施失败: %w", err)
	}

	logger.Info("支持措施播种完成", zap.Int("count", len(rows)))
	return nil
}
