package state

import "github.com/MaiadaMuhammed/AYN/internal/domain"

// NoticeVariant mirrors the storefront's toast variants.
type NoticeVariant string

const (
	NoticeSuccess     NoticeVariant = "success"
	NoticeWarning     NoticeVariant = "warning"
	NoticeDestructive NoticeVariant = "destructive"
)

// Notice is a user-visible message emitted by a state mutation. The copy is
// bilingual: the active language picks which strings are used. Failures that
// abort an operation (like the login gate) are communicated through a Notice,
// never through an error.
type Notice struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Variant     NoticeVariant `json:"variant"`
}

// localized picks the string for the active language.
func localized(lang domain.Language, en, ar string) string {
	if lang == domain.LanguageArabic {
		return ar
	}
	return en
}

func loginRequiredNotice(lang domain.Language) Notice {
	return Notice{
		Title:       localized(lang, "Login Required", "تنبيه"),
		Description: localized(lang, "Please sign in to add products to your cart.", "من فضلك قم بتسجيل الدخول أولاً لتتمكن من اضافة المنتجات للسله"),
		Variant:     NoticeDestructive,
	}
}

func quantityIncreasedNotice(lang domain.Language) Notice {
	return Notice{
		Title:       localized(lang, "Cart Updated", "تم تحديث السلة"),
		Description: localized(lang, "Quantity increased", "تم زيادة الكمية"),
		Variant:     NoticeSuccess,
	}
}

func productAddedNotice(lang domain.Language) Notice {
	return Notice{
		Title:       localized(lang, "Product Added", "تم إضافة المنتج"),
		Description: localized(lang, "Product added to cart", "تم إضافة المنتج إلى السلة"),
		Variant:     NoticeSuccess,
	}
}

func alreadyInFavoritesNotice(lang domain.Language) Notice {
	return Notice{
		Title:       localized(lang, "Already in Favorites", "المنتج موجود بالفعل"),
		Description: localized(lang, "This product is already in your favorites", "هذا المنتج موجود بالفعل في المفضلة"),
		Variant:     NoticeWarning,
	}
}

func addedToFavoritesNotice(lang domain.Language) Notice {
	return Notice{
		Title:       localized(lang, "Added to Favorites", "تم إضافة للمفضلة"),
		Description: localized(lang, "Product added to favorites", "تم إضافة المنتج للمفضلة"),
		Variant:     NoticeSuccess,
	}
}

func removedFromFavoritesNotice(lang domain.Language) Notice {
	return Notice{
		Title:       localized(lang, "Removed from Favorites", "تم إزالة من المفضلة"),
		Description: localized(lang, "Product removed from favorites", "تم إزالة المنتج من المفضلة"),
		Variant:     NoticeSuccess,
	}
}
