package catalog

import "github.com/Veraticus/cardfinder/internal/model"

// Fixture is a predefined, reusable catalog fragment.
type Fixture struct {
	Name       string
	Categories []model.Category
	Items      []model.CatalogItem
}

// Category ids used across tests.
const (
	Finance    model.CategoryID = "finance"
	Investment model.CategoryID = "investment"
	Credit     model.CategoryID = "credit"
	Savings    model.CategoryID = "savings"
)

// FixtureMinimal holds the four standard categories and one item in each.
var FixtureMinimal = Fixture{
	Name: "Minimal",
	Categories: []model.Category{
		{ID: Finance, Name: model.LocalizedText{EN: "Finance", TH: "การเงิน"}, Keywords: []string{"money", "budget"}},
		{ID: Investment, Name: model.LocalizedText{EN: "Investment", TH: "การลงทุน"}, Keywords: []string{"portfolio", "stocks"}},
		{ID: Credit, Name: model.LocalizedText{EN: "Credit", TH: "เครดิต"}, Keywords: []string{"loan", "debt"}},
		{ID: Savings, Name: model.LocalizedText{EN: "Savings", TH: "การออม"}, Keywords: []string{"deposit", "emergency fund"}},
	},
	Items: []model.CatalogItem{
		{
			ID:          1,
			Category:    Finance,
			Name:        model.LocalizedText{EN: "Budget Management", TH: "การจัดการงบประมาณ"},
			Description: model.LocalizedText{EN: "Create and track family budget", TH: "สร้างและติดตามงบประมาณครอบครัว"},
			Keywords:    []string{"budgeting", "expense", "งบประมาณ"},
		},
		{
			ID:          2,
			Category:    Investment,
			Name:        model.LocalizedText{EN: "Stock Portfolio", TH: "พอร์ตหุ้น"},
			Description: model.LocalizedText{EN: "Track stocks and dividends", TH: "ติดตามหุ้นและเงินปันผล"},
			Keywords:    []string{"dividend", "trading"},
		},
		{
			ID:          3,
			Category:    Credit,
			Name:        model.LocalizedText{EN: "Credit Score Monitor", TH: "ตรวจสอบคะแนนเครดิต"},
			Description: model.LocalizedText{EN: "Watch your credit score", TH: "ติดตามคะแนนเครดิตของคุณ"},
			Keywords:    []string{"score", "report"},
		},
		{
			ID:          4,
			Category:    Savings,
			Name:        model.LocalizedText{EN: "Savings Goals", TH: "เป้าหมายการออม"},
			Description: model.LocalizedText{EN: "Set and reach savings targets", TH: "ตั้งและบรรลุเป้าหมายการออม"},
			Keywords:    []string{"goals", "targets"},
		},
	},
}
