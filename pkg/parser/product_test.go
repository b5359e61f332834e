package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dtnitsch/product-page-parser/models"
	"github.com/google/go-cmp/cmp"
)

// galleryHTML builds a product with n thumbnails where the figure shows shown.
func galleryHTML(n int, shown string) string {
	var b strings.Builder
	b.WriteString(`<div class="product"><div class="preview"><figure>`)
	fmt.Fprintf(&b, `<img src="%s"><button></button></figure><nav>`, shown)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `<img src="p%d.jpg" data-src="f%d.jpg" alt="a%d">`, i, i, i)
	}
	b.WriteString(`</nav></div></div>`)
	return b.String()
}

func fulls(images []models.Photo) []string {
	out := make([]string, len(images))
	for i, img := range images {
		out[i] = img.Full
	}
	return out
}

func TestParseImages_DisplayedImageFirst(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		shown string
		want  []string
	}{
		{name: "already first", n: 3, shown: "f0.jpg", want: []string{"f0.jpg", "f1.jpg", "f2.jpg"}},
		{name: "middle", n: 4, shown: "f2.jpg", want: []string{"f2.jpg", "f0.jpg", "f1.jpg", "f3.jpg"}},
		{name: "last", n: 4, shown: "f3.jpg", want: []string{"f3.jpg", "f0.jpg", "f1.jpg", "f2.jpg"}},
		{name: "not in gallery", n: 3, shown: "other.jpg", want: []string{"f0.jpg", "f1.jpg", "f2.jpg"}},
		{name: "single", n: 1, shown: "f0.jpg", want: []string{"f0.jpg"}},
		{name: "empty gallery", n: 0, shown: "f0.jpg", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := parseProduct(loadDocument(t, galleryHTML(tt.n, tt.shown)))
			if diff := cmp.Diff(tt.want, fulls(product.Images)); diff != "" {
				t.Errorf("image order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseImages_KeepsPreviewAndAlt(t *testing.T) {
	product := parseProduct(loadDocument(t, galleryHTML(2, "f1.jpg")))
	want := []models.Photo{
		{Preview: "p1.jpg", Full: "f1.jpg", Alt: "a1"},
		{Preview: "p0.jpg", Full: "f0.jpg", Alt: "a0"},
	}
	if diff := cmp.Diff(want, product.Images); diff != "" {
		t.Errorf("Images mismatch (-want +got):\n%s", diff)
	}
}

func TestParseProduct_IsLiked(t *testing.T) {
	tests := []struct {
		button string
		want   bool
	}{
		{`<button class="active"></button>`, true},
		{`<button class="like active big"></button>`, true},
		{`<button class="like"></button>`, false},
		{``, false},
	}

	for _, tt := range tests {
		html := `<div class="product"><div class="preview"><figure><img src="x">` + tt.button + `</figure></div></div>`
		if got := parseProduct(loadDocument(t, html)).IsLiked; got != tt.want {
			t.Errorf("IsLiked for %q = %v, want %v", tt.button, got, tt.want)
		}
	}
}

func TestParseTags(t *testing.T) {
	html := `<div class="product"><div class="tags">
<span class="green"> Электроника </span>
<span class="red">Скидка</span>
<span class="blue">Новинка</span>
<span class="green">Ноутбуки</span>
<span class="purple">Пропущен</span>
<span>Без класса</span>
<span class="green red">Два класса</span>
</div></div>`

	got := parseProduct(loadDocument(t, html)).Tags
	want := models.Tags{
		Category: []string{"Электроника", "Ноутбуки"},
		Discount: []string{"Скидка"},
		Label:    []string{"Новинка"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tags mismatch (-want +got):\n%s", diff)
	}
}

func TestParseProperties(t *testing.T) {
	html := `<div class="product"><ul class="properties">
<li><span> Цвет </span><span> Серый </span></li>
<li>без элементов</li>
<li><span>Одно значение</span></li>
<li><span>Цвет</span><i>ignored</i><span>Чёрный</span></li>
</ul></div>`

	got := parseProduct(loadDocument(t, html)).Properties
	want := properties("Цвет", "Чёрный", "Одно значение", "Одно значение")
	if !got.Equal(want) {
		t.Errorf("Properties keys = %v, want %v", got.Keys(), want.Keys())
	}
	if v, _ := got.Get("Цвет"); v != "Чёрный" {
		t.Errorf("Properties[Цвет] = %q, want %q", v, "Чёрный")
	}
}

func TestParseDescription(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "attributes stripped",
			html: `<div class="description">
  <p class="lead" id="d1">Hello <a href="https://x.example" target="_blank">link</a></p>
</div>`,
			want: `<p>Hello <a>link</a></p>`,
		},
		{
			name: "void elements",
			html: `<div class="description">one<br class="x">two<img src="a.png" alt="a"></div>`,
			want: `one<br>two<img>`,
		},
		{
			name: "quotes in text",
			html: `<div class="description"><p>It's "great" &amp; &lt;cheap&gt;</p></div>`,
			want: `<p>It's "great" &amp; &lt;cheap&gt;</p>`,
		},
		{
			name: "missing block",
			html: `<p>nothing</p>`,
			want: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := loadDocument(t, `<div class="product">`+tt.html+`</div>`)
			if got := parseProduct(doc).Description; got != tt.want {
				t.Errorf("Description = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseProduct_PriceFields(t *testing.T) {
	t.Run("matched", func(t *testing.T) {
		doc := loadDocument(t, `<div class="product"><div class="price">₽199.99<span>₽249.99</span></div></div>`)
		product := parseProduct(doc)

		if product.Price == nil || *product.Price != 199.99 {
			t.Errorf("Price = %v, want 199.99", product.Price)
		}
		if product.OldPrice == nil || *product.OldPrice != 249.99 {
			t.Errorf("OldPrice = %v, want 249.99", product.OldPrice)
		}
		if product.Discount == nil || *product.Discount != 50 {
			t.Errorf("Discount = %v, want 50", product.Discount)
		}
		if product.DiscountPercent != "20.00%" {
			t.Errorf("DiscountPercent = %q, want %q", product.DiscountPercent, "20.00%")
		}
		if product.Currency != "RUB" {
			t.Errorf("Currency = %q, want %q", product.Currency, "RUB")
		}
	})

	t.Run("unmatched leaves every price field unset", func(t *testing.T) {
		doc := loadDocument(t, `<div class="product"><div class="price">Нет в наличии</div></div>`)
		product := parseProduct(doc)

		if product.Price != nil || product.OldPrice != nil || product.Discount != nil {
			t.Errorf("price fields = %v %v %v, want all nil", product.Price, product.OldPrice, product.Discount)
		}
		if product.DiscountPercent != "" || product.Currency != "" {
			t.Errorf("DiscountPercent, Currency = %q, %q; want empty", product.DiscountPercent, product.Currency)
		}
	})
}
