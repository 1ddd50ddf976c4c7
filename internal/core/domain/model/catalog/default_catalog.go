package catalog

import (
	"bakery/internal/core/domain/model/kernel"
)

type seedProduct struct {
	id          int64
	name        string
	description string
	price       string
	images      []string
	category    Category
}

const unsplash = "https://images.unsplash.com/"
const unsplashParams = "?q=80&w=600&auto=format&fit=crop"

func seedProducts() []seedProduct {
	return []seedProduct{
		{1, "Empada de Frango", "Massa podre que desmancha na boca, com recheio cremoso de frango temperado e azeitonas.", "8.00",
			[]string{"photo-1626100130638-517a80b08055", "photo-1571212502280-9a3b8364b73b"}, Savories},
		{2, "Pão Caseiro", "Receita tradicional de família. Pão macio, fresquinho, perfeito para acompanhar o café.", "15.00",
			[]string{"photo-1509440159596-0249088772ff", "photo-1549931319-a545dcf3bc73"}, Breads},
		{3, "Pão Doce", "Pãozinho doce coberto com creme suave e coco ralado. Fofinho e saboroso.", "12.00",
			[]string{"photo-1623334044303-241021148842", "photo-1517433670267-08bbd4be890f"}, Breads},
		{4, "Rosca de Creme", "Rosca trançada artesanalmente, recheada e coberta com nosso creme de confeiteiro especial.", "22.00",
			[]string{"photo-1600093463592-8e36ae95ef56", "photo-1600093463592-8e36ae95ef56"}, Sweets},
		{5, "Rosca de Doce de Leite", "Massa leve recheada com doce de leite cremoso. Uma explosão de sabor.", "24.00",
			[]string{"photo-1563890250-936d5fe06873", "photo-1563890250-936d5fe06873"}, Sweets},
		{6, "Rosca de Goiabada", "O clássico que não pode faltar. Rosca macia com recheio generoso de goiabada derretida.", "20.00",
			[]string{"photo-1517433670267-08bbd4be890f", "photo-1517433670267-08bbd4be890f"}, Sweets},
		{7, "Bolo de Goiabada", "Bolo fofinho de fubá com pedaços de goiabada. Ideal para o lanche da tarde.", "18.00",
			[]string{"photo-1557925923-9599580468e2", "photo-1557925923-9599580468e2"}, Sweets},
	}
}

// DefaultCatalog returns the products a fresh store starts with.
// It returns an error only if the built-in data is itself invalid.
func DefaultCatalog() ([]*Product, error) {
	seeds := seedProducts()
	products := make([]*Product, 0, len(seeds))
	for _, s := range seeds {
		price, err := kernel.MoneyFromString(s.price)
		if err != nil {
			return nil, err
		}
		images := make([]string, 0, len(s.images))
		for _, img := range s.images {
			images = append(images, unsplash+img+unsplashParams)
		}
		p, err := NewProduct(s.id, s.name, s.description, price, images, s.category)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
