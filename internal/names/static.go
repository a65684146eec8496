package names

// static lists files that follow no naming scheme.
var static = []string{
	"KH2.IDX",
	"KH2.IMG",
	"dbg/bootinfo.bin",
	"dbg/menu.bin",
	"ICON0.PNG",
	"PIC1.PNG",
	"remastered/icon.dds",
	"remastered/loading.dds",
	"remastered/credits.dds",
	"sound/win32/se/system.win32.scd",
	"sound/win32/se/battle.win32.scd",
	"itempic/item-001.imd",
	"itempic/item-002.imd",
	"itempic/item-003.imd",
}
