package pipeline

import (
	"errors"
	"log"
	"os"

	"specfusion/catalog"
	"specfusion/evaluation"
	"specfusion/mapping"
)

// Evaluate сравнивает слитые записи каталога с эталоном. Эталонные
// характеристики получаются прогоном предложений эталонного магазина
// через тот же экстрактор; его метки тождественны канонической схеме,
// поэтому перевода меток не требуется. Товары без эталонного предложения
// или без слитой записи пропускаются.
func (p *Processing) Evaluate(products []*catalog.RawProduct) (*evaluation.Report, error) {
	if err := p.fieldMappings.LoadFromDisk(); err != nil {
		return nil, err
	}

	report := evaluation.NewReport()
	for _, product := range products {
		if product.ShopName != mapping.ReferenceShop {
			continue
		}
		productID, err := catalog.ProductIDFromFilename(product.ReferenceFile)
		if err != nil {
			log.Printf("Skipping reference offer: %v", err)
			continue
		}

		candidate, err := catalog.LoadCatalogProduct(p.config.CatalogPath(productID))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Printf("No catalog product for reference %s, skipping", productID)
			} else {
				log.Printf("Failed to load catalog product %s: %v", productID, err)
			}
			continue
		}

		reference := p.ExtractProperties(product)
		perAttribute := evaluation.CompareSpecifications(reference, candidate.Specifications)
		report.AddProduct(productID, perAttribute)
	}

	log.Printf("Evaluation finished:\n%s", report.Summary())
	return report, nil
}
