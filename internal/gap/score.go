// Package gap は求人の要求スキルと保有スキルの差分を算出する。
package gap

import (
	"strings"

	"github.com/hitoshi/careerdesk/internal/model"
)

// Score は要求スキルごとのギャップを算出する。
// 保有スキルとの照合は名前の大文字小文字を区別しない。同名の保有スキルが
// 複数ある場合は最初の一致を採用する。一致しない場合の観測レベルは0。
// 結果の順序は要求スキルの入力順を保つ。副作用はなく、入力は変更しない。
func Score(required []*model.RequiredSkill, observed []*model.Skill) []model.GapResult {
	results := make([]model.GapResult, 0, len(required))
	for _, rs := range required {
		level := 0
		for _, skill := range observed {
			if strings.EqualFold(skill.Name, rs.Name) {
				level = skill.Level
				break
			}
		}

		g := rs.Importance - level
		results = append(results, model.GapResult{
			RequiredSkillID: rs.ID,
			Name:            rs.Name,
			Importance:      rs.Importance,
			ObservedLevel:   level,
			Gap:             g,
			Classification:  classify(g),
		})
	}
	return results
}

// classify はギャップ値を3段階に分類する。
func classify(g int) model.GapClass {
	switch {
	case g <= 0:
		return model.GapClassMeets
	case g <= 2:
		return model.GapClassSlight
	default:
		return model.GapClassBig
	}
}
