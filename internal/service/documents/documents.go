package documents

import (
	"math"

	"freight/internal/entities"
)

// Обязательные наборы документов по типу сервиса. HAWB/MAWB существуют
// только для консолидированного груза (NFO) — для OBC гейт их не читает.
var requiredByServiceType = map[entities.ServiceTypeType][]entities.DocumentNameType{
	entities.ServiceOBC: {entities.DocAWB, entities.DocPOD},
	entities.ServiceNFO: {entities.DocAWB, entities.DocHAWB, entities.DocMAWB, entities.DocPOD},
}

// Evaluation — результат проверки комплектности документов.
type Evaluation struct {
	CompletionPct int
	Missing       []entities.DocumentNameType
	AllComplete   bool
}

type Gate struct{}

func New() *Gate {
	return &Gate{}
}

// Evaluate считает процент комплектности и список недостающих документов.
// AllComplete истинно, только если каждый обязательный документ ровно
// complete (pending не считается).
func (g *Gate) Evaluate(docs entities.DocumentStatus, serviceType entities.ServiceTypeType) Evaluation {
	required := requiredByServiceType[serviceType]
	if len(required) == 0 {
		return Evaluation{CompletionPct: 0, Missing: nil, AllComplete: false}
	}

	var complete int
	missing := make([]entities.DocumentNameType, 0, len(required))

	for _, name := range required {
		if docs.State(name) == entities.DocumentComplete {
			complete++
			continue
		}
		missing = append(missing, name)
	}

	pct := int(math.Round(100 * float64(complete) / float64(len(required))))

	return Evaluation{
		CompletionPct: pct,
		Missing:       missing,
		AllComplete:   complete == len(required),
	}
}

// Required возвращает обязательный набор для типа сервиса.
func (g *Gate) Required(serviceType entities.ServiceTypeType) []entities.DocumentNameType {
	required := requiredByServiceType[serviceType]
	result := make([]entities.DocumentNameType, len(required))
	copy(result, required)
	return result
}
