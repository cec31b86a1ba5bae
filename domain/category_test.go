package domain

import "testing"

func TestCategoryKey(t *testing.T) {
	var nilCat *Category

	tests := []struct {
		name string
		cat  *Category
		want string
	}{
		{"nil", nilCat, ""},
		{"named", &Category{CategoryID: 4, ProductCategory: "kitchen"}, "kitchen"},
		{"id only", &Category{CategoryID: 4}, "4"},
		{"zero row", &Category{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cat.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}
