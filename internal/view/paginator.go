package view

// PageControls — аффордансы постраничной навигации, производные от
// нулевого индекса страницы и числа страниц последнего успешного конверта.
type PageControls struct {
	CanPrevious  bool
	CanNext      bool
	DisplayIndex int // единичный индекс для отображения «страница X из Y»
	DisplayTotal int
}

// Controls — чистая функция: никаких запросов, только арифметика.
// Для пустого каталога (totalPages == 0) отображается «1 из 1» без навигации.
func Controls(index, totalPages int) PageControls {
	displayTotal := totalPages
	if displayTotal < 1 {
		displayTotal = 1
	}

	displayIndex := index + 1
	if displayIndex > displayTotal {
		displayIndex = displayTotal
	}
	if displayIndex < 1 {
		displayIndex = 1
	}

	return PageControls{
		CanPrevious:  index > 0,
		CanNext:      totalPages > 0 && index+1 < totalPages,
		DisplayIndex: displayIndex,
		DisplayTotal: displayTotal,
	}
}
