// Package catalog contiene las tablas estáticas de presentación de categorías:
// etiquetas localizadas (zh-CN, el idioma del producto) y claves de icono para la UI.
package catalog

// labels mapea la clave interna de la categoría a su etiqueta visible.
var labels = map[string]string{
	"electronics": "电子产品",
	"furniture":   "家具",
	"kitchen":     "厨房用品",
	"clothing":    "衣物",
	"tools":       "工具",
	"books":       "书籍",
	"decor":       "装饰品",
	"appliances":  "家电",
	"sports":      "运动",
	"other":       "其他",
}

// DefaultIcon icono usado cuando la clave no está registrada.
const DefaultIcon = "Package"

// icons claves de icono conocidas por el cliente.
var icons = map[string]bool{
	"Monitor":         true,
	"Sofa":            true,
	"UtensilsCrossed": true,
	"Shirt":           true,
	"Wrench":          true,
	"BookOpen":        true,
	"Lamp":            true,
	"Refrigerator":    true,
	"Dumbbell":        true,
	"Package":         true,
}

// Label devuelve la etiqueta localizada de una categoría.
// Para claves desconocidas devuelve el nombre crudo tal cual.
func Label(name string) string {
	if label, ok := labels[name]; ok {
		return label
	}
	return name
}

// Icon valida una clave de icono y devuelve DefaultIcon si el cliente no la conoce.
func Icon(key string) string {
	if icons[key] {
		return key
	}
	return DefaultIcon
}
