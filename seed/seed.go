package seed

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/desuper666/Site-shop/models"
	"github.com/desuper666/Site-shop/store"
)

type seedProduct struct {
	nameEN, nameRU string
	price          float64
	descEN, descRU string
	image          string
}

var catalog = []seedProduct{
	{"Baggy Jeans", "Свободные джинсы", 49.99, "Loose fit denim jeans", "Джинсы свободного кроя", "Baggy_Jeans.jpg"},
	{"Baggy Pants", "Свободные штаны", 44.99, "Relaxed casual pants", "Повседневные штаны свободного кроя", "Baggy_pants.jpg"},
	{"Bandana T-shirt", "Футболка с банданой", 24.99, "Stylish bandana print tee", "Футболка с принтом банданы", "Bandana_T-shirt.jpg"},
	{"Black T-shirt", "Черная футболка", 19.99, "Classic black tee", "Классическая черная футболка", "Black_T-shirt.jpg"},
	{"BLG T-shirt", "Футболка BLG", 21.99, "Dark green BLG print tee", "Темно-зеленая футболка с принтом BLG", "BLG_T-shirt.jpg"},
	{"Blue T-shirt", "Голубая футболка", 18.99, "Soft blue cotton tee", "Мягкая голубая хлопковая футболка", "Blue_T-shirt.jpg"},
	{"Cargo Pants", "Штаны карго", 39.99, "Utility cargo pants", "Функциональные штаны карго", "Cargo_pants.jpg"},
	{"Fashion Boots", "Модные ботинки", 59.99, "Trendy fashion boots", "Модные ботинки", "Fashion_boots.jpg"},
	{"Fashion Sneakers", "Модные кроссовки", 64.99, "High-top fashion sneakers", "Модные высокие кроссовки", "Fashion_sneakers.jpg"},
	{"Fashion T-shirt", "Модная футболка", 22.99, "Branded fashion tee", "Фирменная модная футболка", "Fashion_t-shirt.jpg"},
	{"Fashionable T-shirt", "Фешенебельная футболка", 27.99, "Trendy logo tee", "Модная футболка с логотипом", "Fashionable_T-shirt.jpg"},
	{"Glitter T-shirt", "Блестящая футболка", 23.99, "T-shirt with glitter print", "Футболка с блестящим принтом", "Glitter_t-shirt.jpg"},
	{"Gray Sweater", "Серый свитер", 34.99, "Comfy gray sweater", "Уютный серый свитер", "Gray_sweater.jpg"},
	{"Green T-shirt", "Зеленая футболка", 19.99, "Bright green t-shirt", "Яркая зеленая футболка", "Green_T-shirt.jpg"},
	{"Jeans", "Джинсы", 44.99, "Classic straight jeans", "Классические прямые джинсы", "Jeans1.jpg"},
	{"Jungle T-shirt", "Футболка Jungle", 25.99, "T-shirt with jungle print", "Футболка с принтом джунглей", "jungle_t-shirt.jpg"},
	{"Polo", "Поло", 31.99, "Black polo shirt", "Черная рубашка поло", "polo.jpg"},
	{"Red Sneakers", "Красные кроссовки", 59.99, "Bright red athletic sneakers", "Яркие красные кроссовки", "Red_sneakers.jpg"},
	{"Running Sneakers", "Беговые кроссовки", 64.99, "Lightweight running sneakers", "Легкие кроссовки для бега", "Running_sneakers.jpg"},
	{"Spotted Pants", "Штаны с пятнами", 35.99, "Patterned casual pants", "Повседневные штаны с пятнами", "Spotted_pants.jpg"},
	{"Sweater", "Свитер", 34.99, "Warm pink sweater", "Теплый розовый свитер", "Sweater.jpg"},
	{"Torn BT-shirt", "Рваная футболка (BT)", 24.99, "Black torn t-shirt", "Черная рваная футболка", "Torn_bt-shirt.jpg"},
	{"Torn T-shirt", "Рваная футболка", 24.99, "Givenchy style torn tee", "Футболка в стиле Givenchy", "Torn_t-shirt.jpg"},
	{"Trousers", "Брюки", 42.99, "Formal black trousers", "Классические черные брюки", "trousers.jpg"},
	{"T-shirt", "Футболка", 19.99, "Everyday black tee", "Повседневная черная футболка", "T-shirt.jpg"},
	{"T-shirt with Print", "Футболка с принтом", 22.99, "Yellow tee with print", "Желтая футболка с принтом", "T-shirt_w_print.jpg"},
	{"Turquoise T-shirt", "Бирюзовая футболка", 20.99, "Two-tone turquoise t-shirt", "Двухцветная бирюзовая футболка", "turquoise_t-shirt.jpg"},
	{"W T-shirt", "Футболка W", 21.99, "W logo print t-shirt", "Футболка с принтом W", "W_T-shirt.jpg"},
	{"White Boots", "Белые ботинки", 54.99, "Stylish white boots", "Стильные белые ботинки", "White_boots.jpg"},
}

// Run seeds the clothing catalog and the default promo codes on an empty
// store. Existing catalogs are left untouched.
func Run(ctx context.Context, st store.Store, log *zap.Logger) error {
	count, err := st.CountProducts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	for _, p := range catalog {
		product := &models.Product{
			NameEN:        p.nameEN,
			NameRU:        p.nameRU,
			DescriptionEN: p.descEN,
			DescriptionRU: p.descRU,
			Price:         p.price,
			Image:         p.image,
			Stock:         10 + rand.Intn(11),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := st.CreateProduct(ctx, product); err != nil {
			return err
		}
	}

	promos := []models.PromoCode{
		{Code: "EASTER20", DiscountPercent: 20, ValidUntil: now.AddDate(1, 0, 0), IsActive: true, CreatedAt: now},
		{Code: "ROMANOVLEXA25", DiscountPercent: 25, ValidUntil: now.AddDate(1, 0, 0), IsActive: true, CreatedAt: now},
	}
	for i := range promos {
		if err := st.CreatePromo(ctx, &promos[i]); err != nil {
			return err
		}
	}

	log.Info("seeded catalog", zap.Int("products", len(catalog)), zap.Int("promos", len(promos)))
	return nil
}
