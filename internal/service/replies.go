package service

// Built-in reply texts. Each one can be replaced under "replies" in config.
const (
	ReplyMenu = `📋 **OUR MENU** 📋

🍔 **FOOD ITEMS:**
• Burger - ₹120
• Pizza - ₹250  
• Fries - ₹80
• Cold Drink - ₹50

💇 **SERVICES:**
• Haircut - ₹300
• Facial - ₹500
• Massage - ₹700

💄 **PRODUCTS:**
• Shampoo - ₹200
• Cream - ₹150

📅 *Type 'BOOKING' to order!*`

	ReplyBooking = `📅 **BOOK AN APPOINTMENT**

🕒 **Hours:** Mon-Sat: 9AM - 9PM, Sun: 10AM - 6PM
📍 **Location:** 123 Business Street
📞 **Call:** +92-XXXXX-XXXXX
💻 **Online:** https://your-business.com/bookings`

	ReplyContact = `📞 **CONTACT US**

📍 **Address:** 123 Business Street, City
📱 **Phone:** +92-XXXXX-XXXXX
📧 **Email:** info@business.com
🌐 **Website:** https://your-business.com
🕒 **Hours:** Mon-Sat: 9AM-9PM, Sun: 10AM-6PM`

	ReplyHours = `🕒 **BUSINESS HOURS**

• Mon-Fri: 9:00 AM - 9:00 PM
• Saturday: 9:00 AM - 9:00 PM  
• Sunday: 10:00 AM - 6:00 PM

📞 **For special timing:** +92-XXXXX-XXXXX`

	ReplyWelcome = `🤖 **Welcome!** 🎉

I'm your virtual assistant. How can I help?

📋 **Quick Options:**
1. View Menu/Products
2. Book Appointment/Order
3. Contact Information  
4. Business Hours

Type the number or ask your question!`

	ReplyThanks = "You're welcome! 😊 Let me know if you need anything else!"

	ReplyFarewell = "Thank you for visiting! 🙏\nAllah Hafiz!"

	ReplyDefault = `🤖 Thanks for your message! 💌

Please choose:
1. MENU - View products/services
2. BOOKING - Make appointment
3. CONTACT - Get details
4. TIME - Business hours

Or ask directly!`
)
