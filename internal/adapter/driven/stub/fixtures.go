package stub

import (
	"github.com/ericfisherdev/nichescript/internal/domain/model"
)

// FallbackResponse is returned for operations the stub has no fixture for.
const FallbackResponse = "Đây là phản hồi mẫu từ ChatGPT."

// ScriptHeader prefixes every canned script; the model name follows it.
const ScriptHeader = "### **Kịch bản Video YouTube (Mẫu từ ChatGPT - Model: "

// Niches returns the canned discovery result for topic.
func Niches(topic string) []model.AnalyzedNiche {
	if topic == "" {
		topic = "chung"
	}
	return []model.AnalyzedNiche{
		{
			Title:       "Trang điểm Hiệu ứng Đặc biệt (SFX) chủ đề " + topic,
			Description: "Hướng dẫn trang điểm các nhân vật kinh dị, quái vật, hoặc các hiệu ứng vết thương giả dành cho mùa " + topic + ".",
			MonetizationPotential: model.Score{
				Score:       7,
				Explanation: "RPM khá. Tiềm năng affiliate lớn cho các sản phẩm mỹ phẩm, dụng cụ hóa trang. Có thể nhận tài trợ từ các nhãn hàng.",
			},
			AudiencePotential: model.Score{
				Score:       8,
				Explanation: "Khán giả trẻ yêu thích hóa trang, lượt xem tăng mạnh theo mùa lễ hội.",
			},
			CompetitionLevel: model.Score{
				Score:       8,
				Explanation: "Cao. Cần kỹ năng trang điểm tốt và ý tưởng độc đáo. Chất lượng quay phim cận cảnh và ánh sáng là yếu tố quyết định.",
			},
			ContentDirection: "Video tutorial (hướng dẫn), time-lapse quá trình trang điểm, review sản phẩm, biến hình thành các nhân vật nổi tiếng.",
			Keywords:         []string{"trang điểm sfx", "hóa trang", topic},
		},
		{
			Title:       "DIY Đồ trang trí " + topic + " tại nhà",
			Description: "Sáng tạo và hướng dẫn làm các món đồ trang trí " + topic + " độc đáo, tiết kiệm chi phí từ những vật dụng đơn giản.",
			MonetizationPotential: model.Score{
				Score:       5,
				Explanation: "RPM trung bình. Có thể làm affiliate cho các trang bán đồ thủ công, dụng cụ. Có thể bán các bộ kit DIY hoặc sản phẩm làm sẵn trên Etsy.",
			},
			AudiencePotential: model.Score{
				Score:       7,
				Explanation: "Phù hợp gia đình và người thích tự làm, nội dung dễ chia sẻ.",
			},
			CompetitionLevel: model.Score{
				Score:       5,
				Explanation: "Trung bình. Cần sự sáng tạo và khả năng quay phim đẹp mắt. Tập trung vào các ý tưởng dễ làm theo để thu hút nhiều đối tượng.",
			},
			ContentDirection: "Video hướng dẫn từng bước (how-to), video 'biến rác thành vàng', tổng hợp 5 ý tưởng trang trí nhanh.",
			Keywords:         []string{"diy", "đồ trang trí", topic},
		},
		{
			Title:       "Kể chuyện ma/lịch sử rùng rợn về " + topic,
			Description: "Tổng hợp và kể lại những câu chuyện ma, truyền thuyết đô thị, hoặc các sự kiện lịch sử kinh dị liên quan đến " + topic + ".",
			MonetizationPotential: model.Score{
				Score:       6,
				Explanation: "RPM khá. Chủ yếu kiếm tiền từ quảng cáo YouTube. Có thể viết sách hoặc podcast nếu có lượng fan trung thành.",
			},
			AudiencePotential: model.Score{
				Score:       8,
				Explanation: "Thể loại kể chuyện có lượng người xem trung thành và thời gian xem dài.",
			},
			CompetitionLevel: model.Score{
				Score:       9,
				Explanation: "Cao. Cạnh tranh với các kênh kể chuyện kinh dị lớn. Cần có giọng kể đặc trưng và khả năng tìm kiếm, biên tập những câu chuyện độc đáo.",
			},
			ContentDirection: "Video dạng kể chuyện, sử dụng giọng đọc lôi cuốn, hình ảnh minh họa, âm thanh rùng rợn để tạo không khí. Không cần lộ mặt (faceless).",
			Keywords:         []string{"chuyện ma", "faceless", topic},
		},
	}
}

const scriptBody = `

**Tiêu đề:** Thử Thách Nấu Ăn Cùng ChatGPT: Liệu AI có phải là đầu bếp tài ba?

---

**[MỞ ĐẦU - HOOK]**

**(0-15 giây)**

*Cảnh quay nhanh, vui nhộn: Nhân vật chính (bạn) nhìn vào tủ lạnh với vẻ mặt bối rối, sau đó quay sang camera.*

**Bạn:** Trong tủ lạnh chỉ còn vài quả trứng, một ít rau củ và... một hộp cá ngừ? Nấu gì bây giờ? Đừng lo, hôm nay chúng ta có một trợ thủ đặc biệt!

*Giơ điện thoại lên, màn hình hiển thị giao diện ChatGPT.*

**Bạn:** Xin giới thiệu, đầu bếp AI ChatGPT! Liệu nó có thể cứu vớt bữa tối của tôi không? Hãy cùng xem nhé!

---

**[THÂN BÀI]**

**(15 giây - 4 phút)**

**Phần 1: Thử thách bắt đầu**

*Bạn gõ vào điện thoại.*
**Bạn:** "Tôi có trứng, cà rốt, hành tây và cá ngừ. Hãy cho tôi một công thức ngon và dễ làm."

*Hiệu ứng âm thanh gõ phím. Màn hình hiển thị câu trả lời của AI.*
**Bạn (đọc to):** "Trứng cuộn cá ngừ kiểu Nhật... Nghe hay đấy! Thử luôn!"

**Phần 2: Quá trình thực hiện**

*Cảnh bạn làm theo công thức, có thể thêm một vài tình huống hài hước (ví dụ: cắt hành tây chảy nước mắt, lóng ngóng cuộn trứng).*
*Sử dụng text overlay để ghi các bước chính.*
*Bình luận dí dỏm về các chỉ dẫn của AI.*

---

**[KẾT LUẬN]**

**(4 phút - 5 phút)**

*Bạn bày món ăn ra đĩa, trông khá hấp dẫn.*
**Bạn:** Và đây là thành quả! Trông không tệ chút nào!

*Bạn nếm thử món ăn.*
**Bạn (vẻ mặt ngạc nhiên):** Wow! Ngon bất ngờ! ChatGPT, bạn đã được nhận!

*Quay sang camera.*
**Bạn:** Vậy là AI cũng có thể nấu ăn đấy chứ! Bạn nghĩ sao về thử thách này? Hãy để lại bình luận bên dưới nhé! Đừng quên nhấn like, đăng ký kênh và bật chuông thông báo để không bỏ lỡ những video tiếp theo! Cảm ơn và hẹn gặp lại!
`

// Script returns the canned script for modelName.
func Script(modelName string) string {
	return ScriptHeader + modelName + ")**" + scriptBody
}
