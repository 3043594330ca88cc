// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package images

import "sitespark/internal/models"

// stockSet is the curated fallback imagery for one category. All Unsplash
// hotlink URLs with sizing parameters baked in, so the preview renders
// without any asset hosting on our side.
type stockSet struct {
	hero    string
	service string
	team    string
	gallery []string
}

const unsplash = "https://images.unsplash.com/"
const heroParams = "?auto=format&fit=crop&w=1600&q=80"
const cardParams = "?auto=format&fit=crop&w=800&q=80"

var stockSets = map[models.Category]stockSet{
	models.CategoryRestaurant: {
		hero:    unsplash + "photo-1517248135467-4c7edcad34c4" + heroParams,
		service: unsplash + "photo-1504674900247-0877df9cc836" + cardParams,
		team:    unsplash + "photo-1577219491135-ce391730fb2c" + cardParams,
		gallery: []string{
			unsplash + "photo-1414235077428-338989a2e8c0" + cardParams,
			unsplash + "photo-1555396273-367ea4eb4db5" + cardParams,
			unsplash + "photo-1559339352-11d035aa65de" + cardParams,
		},
	},
	models.CategoryPlumbing: {
		hero:    unsplash + "photo-1581244277943-fe4a9c777189" + heroParams,
		service: unsplash + "photo-1585704032915-c3400ca199e7" + cardParams,
		team:    unsplash + "photo-1560250097-0b93528c311a" + cardParams,
		gallery: []string{
			unsplash + "photo-1542013936693-884638332954" + cardParams,
			unsplash + "photo-1584622650111-993a426fbf0a" + cardParams,
			unsplash + "photo-1581092918056-0c4c3acd3789" + cardParams,
		},
	},
	models.CategoryBeauty: {
		hero:    unsplash + "photo-1560066984-138dadb4c035" + heroParams,
		service: unsplash + "photo-1522337660859-02fbefca4702" + cardParams,
		team:    unsplash + "photo-1595476108010-b4d1f102b1b1" + cardParams,
		gallery: []string{
			unsplash + "photo-1562322140-8baeececf3df" + cardParams,
			unsplash + "photo-1604654894610-df63bc536371" + cardParams,
			unsplash + "photo-1519014816548-bf5fe059798b" + cardParams,
		},
	},
	models.CategoryAuto: {
		hero:    unsplash + "photo-1486262715619-67b85e0b08d3" + heroParams,
		service: unsplash + "photo-1625047509168-a7026f36de04" + cardParams,
		team:    unsplash + "photo-1613214450416-9d49e3a3f4e9" + cardParams,
		gallery: []string{
			unsplash + "photo-1487754180451-c456f719a1fc" + cardParams,
			unsplash + "photo-1530046339160-ce3e530c7d2f" + cardParams,
			unsplash + "photo-1632823471565-1ecdf5c6da05" + cardParams,
		},
	},
	models.CategoryCleaning: {
		hero:    unsplash + "photo-1581578731548-c64695cc6952" + heroParams,
		service: unsplash + "photo-1563453392212-326f5e854473" + cardParams,
		team:    unsplash + "photo-1521737711867-e3b97375f902" + cardParams,
		gallery: []string{
			unsplash + "photo-1527515637462-cff94eecc1ac" + cardParams,
			unsplash + "photo-1584820927498-cfe5211fd8bf" + cardParams,
			unsplash + "photo-1628177142898-93e36e4e3a50" + cardParams,
		},
	},
	models.CategoryElectrical: {
		hero:    unsplash + "photo-1621905251189-08b45d6a269e" + heroParams,
		service: unsplash + "photo-1565608438257-fac3c27beb36" + cardParams,
		team:    unsplash + "photo-1574689049597-7e6ba81c5cf1" + cardParams,
		gallery: []string{
			unsplash + "photo-1558618666-fcd25c85cd64" + cardParams,
			unsplash + "photo-1544724569-5f546fd6f2b5" + cardParams,
			unsplash + "photo-1555963966-b7ae5404b6ed" + cardParams,
		},
	},
	models.CategoryConstruction: {
		hero:    unsplash + "photo-1504307651254-35680f356dfd" + heroParams,
		service: unsplash + "photo-1503387762-592deb58ef4e" + cardParams,
		team:    unsplash + "photo-1541888946425-d81bb19240f5" + cardParams,
		gallery: []string{
			unsplash + "photo-1581094794329-c8112a89af12" + cardParams,
			unsplash + "photo-1590725140246-20acdee442be" + cardParams,
			unsplash + "photo-1523217582562-09d0def993a6" + cardParams,
		},
	},
	models.CategoryRetail: {
		hero:    unsplash + "photo-1441986300917-64674bd600d8" + heroParams,
		service: unsplash + "photo-1472851294608-062f824d29cc" + cardParams,
		team:    unsplash + "photo-1556745757-8d76bdb6984b" + cardParams,
		gallery: []string{
			unsplash + "photo-1534452203293-494d7ddbf7e0" + cardParams,
			unsplash + "photo-1555529669-e69e7aa0ba9a" + cardParams,
			unsplash + "photo-1567401893414-76b7b1e5a7a5" + cardParams,
		},
	},
	models.CategoryDental: {
		hero:    unsplash + "photo-1588776814546-1ffcf47267a5" + heroParams,
		service: unsplash + "photo-1606811841689-23dfddce3e95" + cardParams,
		team:    unsplash + "photo-1559839734-2b71ea197ec2" + cardParams,
		gallery: []string{
			unsplash + "photo-1629909613654-28e377c37b09" + cardParams,
			unsplash + "photo-1598256989800-fe5f95da9787" + cardParams,
			unsplash + "photo-1571772996211-2f02c9727629" + cardParams,
		},
	},
	models.CategoryMedical: {
		hero:    unsplash + "photo-1538108149393-fbbd81895907" + heroParams,
		service: unsplash + "photo-1579684385127-1ef15d508118" + cardParams,
		team:    unsplash + "photo-1576091160399-112ba8d25d1d" + cardParams,
		gallery: []string{
			unsplash + "photo-1631217868264-e5b90bb7e133" + cardParams,
			unsplash + "photo-1584982751601-97dcc096659c" + cardParams,
			unsplash + "photo-1551076805-e1869033e561" + cardParams,
		},
	},
	models.CategoryGeneralService: {
		hero:    unsplash + "photo-1521791136064-7986c2920216" + heroParams,
		service: unsplash + "photo-1600880292203-757bb62b4baf" + cardParams,
		team:    unsplash + "photo-1522071820081-009f0129c71c" + cardParams,
		gallery: []string{
			unsplash + "photo-1497366216548-37526070297c" + cardParams,
			unsplash + "photo-1556761175-5973dc0f32e7" + cardParams,
			unsplash + "photo-1542744173-8e7e53415bb0" + cardParams,
		},
	},
}

// StockBundle returns the curated stock imagery for a category. Unknown
// categories get the general-service set, so the fallback is total.
func StockBundle(category models.Category) *models.ImageBundle {
	set, ok := stockSets[category]
	if !ok {
		set = stockSets[models.CategoryGeneralService]
	}
	return &models.ImageBundle{
		Hero:        set.hero,
		Service:     set.service,
		Team:        set.team,
		Gallery:     append([]string(nil), set.gallery...),
		AIGenerated: false,
	}
}
